package cli

import (
	"github.com/julianstephens/dayface/internal/gesture"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/polar"
)

// TapCmd resolves a tap, or a drag when --to is set, on the linear timeline.
type TapCmd struct {
	Y    float64  `arg:"" help:"Content offset in pixels."`
	To   *float64 `help:"End offset of a drag selection."`
	Date string   `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *TapCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	l, _, err := ctx.Layout(date)
	if err != nil {
		return err
	}

	if c.To != nil {
		sel := gesture.Begin(l, c.Y)
		sel = gesture.Update(sel, l, *c.To)
		p := gesture.End(sel)
		logger.Debug("selection", "from", c.Y, "to", *c.To, "start", p.StartTime(), "end", p.EndTime())
		ctx.printf("selection: propose %s-%s (%d min)\n", p.StartTime(), p.EndTime(), p.Duration())
		return nil
	}

	res := gesture.Tap(l, c.Y)
	logger.Debug("tap", "y", c.Y, "minute", res.Minute, "kind", res.Kind)
	switch res.Kind {
	case gesture.TapGap:
		ctx.printf("free at %s: propose %s-%s\n", formatMinute(res.Minute), res.Proposal.StartTime(), res.Proposal.EndTime())
	case gesture.TapEvent:
		ctx.printf("event at %s: %s (%s-%s) [%s]\n", formatMinute(res.Minute), res.Event.Title, res.Event.StartTime, res.Event.EndTime, res.Event.ID)
	default:
		ctx.printf("nothing at y=%.1f\n", c.Y)
	}
	return nil
}

// HitCmd resolves a tap on the clock face at (x, y) relative to its centre.
type HitCmd struct {
	X      float64 `arg:"" help:"Horizontal offset from the centre."`
	Y      float64 `arg:"" help:"Vertical offset from the centre, growing downward."`
	Date   string  `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	Window string  `short:"w" help:"'full' for the whole day or 'window' for the paged window." enum:"full,window" default:"full"`
	At     string  `help:"Time (HH:MM) that picks the window, defaults to now."`
	Hours  int     `help:"Window length in hours, defaults to the configured value."`
}

func (c *HitCmd) Run(ctx *Context) error {
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

	hit := p.HitTest(p.Slices(entries), c.X, c.Y)
	dispatched := false
	polar.Dispatch(hit, polar.Callbacks{
		OnEventTap: func(id string) {
			dispatched = true
			ctx.printf("event at %.2f° (%s): %s [%s]\n", hit.ContentAngle, formatMinute(hit.Minute), hit.Event.Title, id)
		},
		OnFreeRegionTap: func(start, end string) {
			dispatched = true
			ctx.printf("free at %.2f° (%s): propose %s-%s\n", hit.ContentAngle, formatMinute(hit.Minute), start, end)
		},
	})
	if !dispatched {
		ctx.printf("nothing at %.2f°\n", hit.ContentAngle)
	}
	return nil
}
