package cli

import (
	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/utils"
)

type AstroCmd struct {
	At      string  `help:"Time (HH:MM), defaults to now."`
	Sunrise string  `help:"Sunrise (HH:MM), defaults to the configured value."`
	Sunset  string  `help:"Sunset (HH:MM), defaults to the configured value."`
	Radius  float64 `help:"Arc radius used for marker positions." default:"100"`
}

func (c *AstroCmd) Run(ctx *Context) error {
	minute, err := ctx.ResolveMinute(c.At)
	if err != nil {
		return err
	}
	cfg := ctx.config()
	rise, set := cfg.Sunrise, cfg.Sunset
	if c.Sunrise != "" {
		rise = c.Sunrise
	}
	if c.Sunset != "" {
		set = c.Sunset
	}

	arc := astro.New(rise, set)
	ctx.printf("%s\n", headerStyle.Render("Sky at "+utils.MinutesToTime(minute)))
	ctx.printf("  sunrise %s  sunset %s\n", utils.MinutesToTime(arc.Sunrise), utils.MinutesToTime(arc.Sunset))

	markers := arc.Markers(float64(minute), astro.Point{}, c.Radius)
	if len(markers) == 0 {
		ctx.printf("  no markers\n")
	}
	for _, m := range markers {
		ctx.printf("  %-4s progress=%5.1f%%  at (%.1f, %.1f)\n", m.Body, m.Progress*100, m.Position.X, m.Position.Y)
	}
	return nil
}
