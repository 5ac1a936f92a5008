package cli

import (
	"fmt"

	"github.com/julianstephens/onetake/internal/theme"
)

type ThemeCmd struct {
	Mode string `help:"Mode to print (light or dark). Defaults to the configured mode."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	mode := ctx.Themes.Mode()
	if c.Mode != "" {
		m, err := theme.ParseMode(c.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	t := theme.TokensFor(mode)
	out := ctx.out()

	fmt.Fprintf(out, "Theme: %s\n\nColors:\n", mode)
	for _, kv := range t.Colors.Named() {
		fmt.Fprintf(out, "  %-14s %s\n", kv[0], kv[1])
	}

	s := t.Spacing
	fmt.Fprintf(out, "\nSpacing:\n  xs=%d sm=%d md=%d lg=%d xl=%d xxl=%d\n", s.XS, s.SM, s.MD, s.LG, s.XL, s.XXL)

	r := t.Radii
	fmt.Fprintf(out, "\nRadii:\n  sm=%d md=%d lg=%d xl=%d xxl=%d full=%d\n", r.SM, r.MD, r.LG, r.XL, r.XXL, r.Full)

	fmt.Fprintf(out, "\nTypography:\n")
	ty := t.Typography
	for _, row := range []struct {
		name string
		ts   theme.TextStyle
	}{
		{"h1", ty.H1}, {"h2", ty.H2}, {"h3", ty.H3},
		{"body1", ty.Body1}, {"body2", ty.Body2}, {"caption", ty.Caption},
	} {
		weight := "regular"
		if row.ts.Bold {
			weight = "bold"
		}
		fmt.Fprintf(out, "  %-8s %d/%d %s\n", row.name, row.ts.Size, row.ts.LineHeight, weight)
	}

	fmt.Fprintf(out, "\nShadows:\n")
	for _, row := range []struct {
		name string
		sh   theme.Shadow
	}{{"sm", t.Shadows.SM}, {"md", t.Shadows.MD}, {"lg", t.Shadows.LG}} {
		fmt.Fprintf(out, "  %-3s offset=%d,%d opacity=%.2f radius=%.2f elevation=%d\n",
			row.name, row.sh.OffsetX, row.sh.OffsetY, row.sh.Opacity, row.sh.Radius, row.sh.Elevation)
	}
	return nil
}
