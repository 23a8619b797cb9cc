package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/render"
	"github.com/julianstephens/dayface/internal/timeline"
)

type LayoutCmd struct {
	Date  string  `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	SVG   string  `help:"Write the timeline as SVG to this path ('-' for stdout)." name:"svg"`
	Width float64 `help:"SVG width in pixels." default:"320"`
}

func (c *LayoutCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	l, items, err := ctx.Layout(date)
	if err != nil {
		return err
	}
	logger.Debug("layout pass", "date", date, "items", len(items), "height", l.ContentHeight())

	if c.SVG != "" {
		return writeSVG(ctx, c.SVG, func(w io.Writer) error {
			return render.Timeline(w, l, render.TimelineOptions{Width: c.Width})
		})
	}

	ctx.printf("%s\n", headerStyle.Render(fmt.Sprintf("Timeline for %s (%.0fpx)", date, l.ContentHeight())))
	for _, row := range l.Rows() {
		ctx.printf("  %-5s %s  top=%7.1f height=%6.1f  %s\n",
			timeline.Kind(row.Item), formatSpan(row.Item.Span()), row.Top, row.Height, describeItem(row.Item))
	}
	return nil
}

// writeSVG runs draw against the named file, or stdout for "-".
func writeSVG(ctx *Context, path string, draw func(io.Writer) error) error {
	if path == "-" {
		return draw(ctx.out())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := draw(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	ctx.printf("Wrote %s\n", path)
	return nil
}
