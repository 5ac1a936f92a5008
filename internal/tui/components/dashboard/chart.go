package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/models"
)

const barWidth = 3

// BarHeights scales each value to a whole number of rows out of height,
// relative to the largest value in the series.
func BarHeights(values []float64, height int) []int {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	heights := make([]int, len(values))
	if peak <= 0 || height <= 0 {
		return heights
	}
	for i, v := range values {
		h := int(math.Round(math.Max(v, 0) / peak * float64(height)))
		heights[i] = min(h, height)
	}
	return heights
}

// RenderChart draws series as vertical bars with the labels underneath.
func RenderChart(series models.MetricSeries, height int, bar, label lipgloss.Style) string {
	heights := BarHeights(series.Values, height)
	cell := lipgloss.NewStyle().Width(barWidth)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		cols := make([]string, len(heights))
		for i, h := range heights {
			if h >= row {
				cols[i] = bar.Render(strings.Repeat("█", barWidth))
			} else {
				cols[i] = strings.Repeat(" ", barWidth)
			}
		}
		b.WriteString(strings.Join(cols, " "))
		b.WriteString("\n")
	}

	labels := make([]string, len(series.Labels))
	for i, l := range series.Labels {
		labels[i] = label.Inherit(cell).Render(l)
	}
	b.WriteString(strings.Join(labels, " "))
	return b.String()
}
