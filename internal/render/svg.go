// Package render draws the clock face and the linear timeline as SVG.
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

const (
	defaultFont     = "Arial, sans-serif"
	defaultFontSize = 12.0
	faceColor       = "#fafafa"
	strokeColor     = "#333333"
	handColor       = "#d9534f"
	sunColor        = "#f0ad4e"
	moonColor       = "#8a8fa8"
)

// ClockOptions control the clock face drawing.
type ClockOptions struct {
	Size   float64 // width and height of the square canvas
	Labels bool    // draw event titles inside their slices

	// NowMinute draws a hand when non-negative.
	NowMinute float64

	// Arc, when set, draws the sun and moon markers above the face.
	Arc *astro.Arc
}

// DefaultClockOptions returns a 400px face with labels and no hand.
func DefaultClockOptions() ClockOptions {
	return ClockOptions{Size: 400, Labels: true, NowMinute: -1}
}

// Clock writes the projected slices as one <path> per slice.
func Clock(w io.Writer, p polar.Projector, slices []polar.Slice, opts ClockOptions) error {
	if opts.Size <= 0 {
		opts.Size = DefaultClockOptions().Size
	}
	bw := bufio.NewWriter(w)

	cx, cy := opts.Size/2, opts.Size/2
	radius := opts.Size * 0.45

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		opts.Size, opts.Size, opts.Size, opts.Size)
	fmt.Fprintf(bw, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		cx, cy, radius, faceColor, strokeColor)

	for _, s := range slices {
		r := radius * s.OuterRadiusMultiplier
		class := "event"
		if s.IsFree {
			class = "free"
		}
		fmt.Fprintf(bw, `  <path class="%s" d="%s" fill="%s" stroke="%s" stroke-width="0.5">`,
			class, wedgePath(cx, cy, r, s.StartAngle, displaySweep(p, s)), escapeXML(s.Color), strokeColor)
		span := s.Item.Span()
		title := fmt.Sprintf("%s-%s", utils.MinutesToTime(span.Start), utils.MinutesToTime(span.End))
		if s.Event != nil {
			title = s.Event.Title + " " + title
		}
		fmt.Fprintf(bw, `<title>%s</title></path>`+"\n", escapeXML(title))
	}

	if opts.Labels {
		for _, s := range slices {
			if s.Event == nil {
				continue
			}
			mid := s.StartAngle + displaySweep(p, s)/2
			x, y := pointAt(cx, cy, radius*s.OuterRadiusMultiplier*0.6, mid)
			fmt.Fprintf(bw, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				x, y, defaultFont, defaultFontSize, escapeXML(s.Event.Title))
		}
	}

	if opts.NowMinute >= 0 {
		win := p.Window
		if opts.NowMinute >= float64(win.Start) && opts.NowMinute < float64(win.End) {
			x, y := pointAt(cx, cy, radius, p.AngleForMinute(opts.NowMinute))
			fmt.Fprintf(bw, `  <line class="now" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
				cx, cy, x, y, handColor)
		}
	}

	if opts.Arc != nil && opts.NowMinute >= 0 {
		center := astro.Point{X: cx, Y: cy}
		for _, m := range opts.Arc.Markers(opts.NowMinute, center, radius*0.9) {
			color := sunColor
			if m.Body == astro.Moon {
				color = moonColor
			}
			fmt.Fprintf(bw, `  <circle class="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
				m.Body, m.Position.X, m.Position.Y, radius*0.05, color)
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// displaySweep is the slice's extent in display degrees. A semicircle window
// halves the content sweep.
func displaySweep(p polar.Projector, s polar.Slice) float64 {
	if p.Semicircle {
		return polar.ToDisplay(s.ContentEnd) - polar.ToDisplay(s.ContentStart)
	}
	return s.Sweep()
}

// wedgePath is a pie wedge from the centre, starting at display angle start
// and running clockwise for sweep degrees.
func wedgePath(cx, cy, r, start, sweep float64) string {
	if sweep >= 360 {
		// An SVG arc cannot start and end on the same point; draw two halves.
		x0, y0 := pointAt(cx, cy, r, start)
		x1, y1 := pointAt(cx, cy, r, start+180)
		return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f Z",
			x0, y0, r, r, x1, y1, r, r, x0, y0)
	}
	x0, y0 := pointAt(cx, cy, r, start)
	x1, y1 := pointAt(cx, cy, r, start+sweep)
	large := 0
	if sweep > 180 {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, x0, y0, r, r, large, x1, y1)
}

// pointAt converts a display angle in degrees to screen coordinates, y down.
func pointAt(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// TimelineOptions control the linear timeline drawing.
type TimelineOptions struct {
	Width float64
}

// Timeline writes one <rect> per layout row, with stacked tiles for groups.
func Timeline(w io.Writer, l *timeline.Layout, opts TimelineOptions) error {
	if opts.Width <= 0 {
		opts.Width = 320
	}
	m := l.Metrics()
	bw := bufio.NewWriter(w)

	height := math.Max(l.ContentHeight(), 1)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		opts.Width, height, opts.Width, height)

	labelX := 48.0
	for _, row := range l.Rows() {
		span := row.Item.Span()
		fmt.Fprintf(bw, `  <text x="4" y="%.2f" font-family="%s" font-size="%.0f" dominant-baseline="hanging">%s</text>`+"\n",
			row.Top, defaultFont, defaultFontSize-2, utils.MinutesToTime(span.Start))

		switch item := row.Item.(type) {
		case timeline.GapItem:
			fmt.Fprintf(bw, `  <rect class="gap" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#cccccc" stroke-dasharray="4 4"/>`+"\n",
				labelX, row.Top, opts.Width-labelX-4, row.Height)
		case timeline.EventItem:
			writeTile(bw, labelX, row.Top, opts.Width-labelX-4, row.Height, item.Entry)
		case timeline.GroupItem:
			y := row.Top
			for _, e := range item.Entries {
				writeTile(bw, labelX, y, opts.Width-labelX-4, m.TileHeight, e)
				y += m.TileHeight + m.TileGap
			}
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeTile(w io.Writer, x, y, width, height float64, e timeline.Entry) {
	color := e.Event.Color
	if color == "" {
		color = constants.DefaultEventColor
	}
	fmt.Fprintf(w, `  <rect class="event" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" rx="3" ry="3"/>`+"\n",
		x, y, width, height, escapeXML(color))
	fmt.Fprintf(w, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" dominant-baseline="hanging">%s</text>`+"\n",
		x+6, y+4, defaultFont, defaultFontSize, escapeXML(e.Event.Title))
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
