package theme

import (
	"fmt"

	"github.com/julianstephens/onetake/internal/constants"
)

// Mode selects which palette is active.
type Mode string

const (
	Dark  Mode = constants.ThemeModeDark
	Light Mode = constants.ThemeModeLight
)

// ParseMode accepts "dark" or "light".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Dark, Light:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown theme mode %q (want %q or %q)", s, Dark, Light)
}

type Colors struct {
	Primary       string
	Secondary     string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
	Success       string
	Error         string
	Warning       string
}

// Scale is a named six-step size scale.
type Scale struct {
	XS, SM, MD, LG, XL, XXL int
}

type Radii struct {
	SM, MD, LG, XL, XXL, Full int
}

type TextStyle struct {
	Size       int
	LineHeight int
	Bold       bool
}

type Typography struct {
	H1, H2, H3, Body1, Body2, Caption TextStyle
}

type Shadow struct {
	Color     string
	OffsetX   int
	OffsetY   int
	Opacity   float64
	Radius    float64
	Elevation int
}

type Shadows struct {
	SM, MD, LG Shadow
}

// Tokens is the full design-token table for one mode.
type Tokens struct {
	Mode       Mode
	Colors     Colors
	Spacing    Scale
	Typography Typography
	Shadows    Shadows
	Radii      Radii
}

// TokensFor derives the token table for mode. Only Colors depend on mode.
func TokensFor(mode Mode) Tokens {
	return Tokens{
		Mode:    mode,
		Colors:  colorsFor(mode),
		Spacing: Scale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48},
		Typography: Typography{
			H1:      TextStyle{Size: 32, LineHeight: 40, Bold: true},
			H2:      TextStyle{Size: 24, LineHeight: 32, Bold: true},
			H3:      TextStyle{Size: 20, LineHeight: 28, Bold: true},
			Body1:   TextStyle{Size: 16, LineHeight: 24},
			Body2:   TextStyle{Size: 14, LineHeight: 20},
			Caption: TextStyle{Size: 12, LineHeight: 16},
		},
		Shadows: Shadows{
			SM: Shadow{Color: "#000000", OffsetY: 1, Opacity: 0.18, Radius: 1.0, Elevation: 1},
			MD: Shadow{Color: "#000000", OffsetY: 2, Opacity: 0.25, Radius: 3.84, Elevation: 5},
			LG: Shadow{Color: "#000000", OffsetY: 4, Opacity: 0.30, Radius: 4.65, Elevation: 8},
		},
		Radii: Radii{SM: 4, MD: 8, LG: 12, XL: 16, XXL: 24, Full: 9999},
	}
}

func colorsFor(mode Mode) Colors {
	c := Colors{
		Primary:   "#6C63FF",
		Secondary: "#9CA3AF",
		Success:   "#4CAF50",
		Error:     "#EF4444",
		Warning:   "#F59E0B",
	}
	if mode == Light {
		c.Background = "#FFFFFF"
		c.Surface = "#F3F4F6"
		c.Text = "#1F2937"
		c.TextSecondary = "#6B7280"
		c.Border = "#E5E7EB"
		return c
	}
	// Surface and border are translucent white over the background,
	// flattened because terminals have no alpha.
	c.Background = "#1A1A2E"
	c.Surface = "#252538"
	c.Text = "#FFFFFF"
	c.TextSecondary = "#9CA3AF"
	c.Border = "#313143"
	return c
}

// Named returns the colors as name/value pairs in a stable order.
func (c Colors) Named() [][2]string {
	return [][2]string{
		{"primary", c.Primary},
		{"secondary", c.Secondary},
		{"background", c.Background},
		{"surface", c.Surface},
		{"text", c.Text},
		{"textSecondary", c.TextSecondary},
		{"border", c.Border},
		{"success", c.Success},
		{"error", c.Error},
		{"warning", c.Warning},
	}
}
