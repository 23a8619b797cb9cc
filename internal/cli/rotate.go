package cli

import (
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/rotation"
)

// RotateCmd replays horizontal drags on the semicircle clock and reports the
// window each one settles on.
type RotateCmd struct {
	Drags []float64 `arg:"" help:"Horizontal drag distances in pixels, negative to the left (pass -- before negative values)."`
	At    string    `help:"Time (HH:MM) that picks the starting window, defaults to now."`
	Hours int       `help:"Window length in hours, defaults to the configured value."`
}

func (c *RotateCmd) Run(ctx *Context) error {
	p, err := ctx.Projector("window", c.At, c.Hours)
	if err != nil {
		return err
	}
	window := p.Window

	ctrl := rotation.NewController(func(dir rotation.Direction) {
		window = polar.PageWindow(window, int(dir))
	})
	ctrl.Config = ctx.config().RotationSettings()

	ctx.printf("start window %s\n", formatSpan(window))
	for _, dx := range c.Drags {
		ctrl.Start()
		ctrl.Move(dx)
		dragged := ctrl.Offset()
		dir := ctrl.End()
		logger.Debug("rotation", "dx", dx, "offset", dragged, "direction", dir)
		ctx.printf("  drag %+7.1fpx  offset %+6.1f°  settled %+6.1f°  window %s\n",
			dx, dragged, ctrl.Offset(), formatSpan(window))
	}
	return nil
}
