package cli

import (
	"io"

	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/render"
)

type ClockCmd struct {
	Date   string  `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	Window string  `short:"w" help:"'full' for the whole day or 'window' for the paged window." enum:"full,window" default:"full"`
	At     string  `help:"Time (HH:MM) that picks the window and the hand, defaults to now."`
	Hours  int     `help:"Window length in hours, defaults to the configured value."`
	SVG    string  `help:"Write the clock face as SVG to this path ('-' for stdout)." name:"svg"`
	Size   float64 `help:"SVG size in pixels." default:"400"`
}

func (c *ClockCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	_, entries, err := ctx.LoadEntries(date)
	if err != nil {
		return err
	}
	p, err := ctx.Projector(c.Window, c.At, c.Hours)
	if err != nil {
		return err
	}
	slices := p.Slices(entries)
	logger.Debug("clock projection", "date", date, "window", p.Window.String(), "slices", len(slices), "semicircle", p.Semicircle)

	if c.SVG != "" {
		now, err := ctx.ResolveMinute(c.At)
		if err != nil {
			return err
		}
		cfg := ctx.config()
		arc := astro.New(cfg.Sunrise, cfg.Sunset)
		opts := render.DefaultClockOptions()
		opts.Size = c.Size
		opts.NowMinute = float64(now)
		opts.Arc = &arc
		return writeSVG(ctx, c.SVG, func(w io.Writer) error {
			return render.Clock(w, p, slices, opts)
		})
	}

	mode := "full circle"
	if p.Semicircle {
		mode = "semicircle"
	}
	ctx.printf("%s\n", headerStyle.Render("Clock "+date+" "+formatSpan(p.Window)+" ("+mode+")"))
	for _, s := range slices {
		label := describeItem(s.Item)
		if s.Event != nil {
			if cat := polar.Category(s.Event.Title); cat != "" {
				label += dimStyle.Render(" [" + cat + "]")
			}
		}
		ctx.printf("  %s  %7.2f° -> %7.2f°  r=%.2f  %s\n",
			formatSpan(s.Item.Span()), s.StartAngle, s.EndAngle, s.OuterRadiusMultiplier, label)
	}
	return nil
}
