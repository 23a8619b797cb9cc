package timeline

import (
	"math"
	"sort"

	"github.com/julianstephens/dayface/internal/constants"
)

// Metrics are the pixel constants a layout is built from.
type Metrics struct {
	PixelsPerMinute float64
	MinRowHeight    float64
	TileHeight      float64
	TileGap         float64
	RowMargin       float64
}

// DefaultMetrics returns the built-in layout constants.
func DefaultMetrics() Metrics {
	return Metrics{
		PixelsPerMinute: constants.PixelsPerMinute,
		MinRowHeight:    constants.MinRowHeight,
		TileHeight:      constants.TileHeight,
		TileGap:         constants.TileGap,
		RowMargin:       constants.RowMargin,
	}
}

// Row is an item placed in pixel space. The row occupies [Top, Top+Height)
// and is followed by the layout's row margin.
type Row struct {
	Item   Item
	Top    float64
	Height float64
}

func (r Row) Bottom() float64 {
	return r.Top + r.Height
}

// Layout is the vertical, duration-proportional placement of a day's items.
type Layout struct {
	metrics Metrics
	rows    []Row
	height  float64
}

// NewLayout assigns each item a row. Heights follow duration, with a floor of
// MinRowHeight and, for groups, the height their stacked tiles need.
func NewLayout(items []Item, m Metrics) *Layout {
	l := &Layout{metrics: m, rows: make([]Row, 0, len(items))}
	offset := 0.0
	for _, item := range items {
		h := m.RowHeight(item)
		l.rows = append(l.rows, Row{Item: item, Top: offset, Height: h})
		offset += h + m.RowMargin
	}
	l.height = offset
	return l
}

// RowHeight returns the pixel height of a single item.
func (m Metrics) RowHeight(item Item) float64 {
	span := item.Span()
	h := math.Max(m.MinRowHeight, float64(span.Duration())*m.PixelsPerMinute)
	if g, ok := item.(GroupItem); ok {
		n := float64(len(g.Entries))
		stacked := n*m.TileHeight + (n-1)*m.TileGap
		h = math.Max(h, stacked)
	}
	return h
}

func (l *Layout) Metrics() Metrics {
	return l.metrics
}

func (l *Layout) Rows() []Row {
	return l.rows
}

// ContentHeight is the total scrollable height, margins included.
func (l *Layout) ContentHeight() float64 {
	return l.height
}

// MinuteToPixel maps a minute of the day to its y offset. Minutes past the
// last row map to that row's bottom edge.
func (l *Layout) MinuteToPixel(minute float64) float64 {
	if len(l.rows) == 0 {
		return 0
	}
	for _, r := range l.rows {
		span := r.Item.Span()
		if minute < float64(span.End) {
			frac := (minute - float64(span.Start)) / float64(span.Duration())
			if frac < 0 {
				frac = 0
			}
			return r.Top + frac*r.Height
		}
	}
	return l.rows[len(l.rows)-1].Bottom()
}

// PixelToMinute is the inverse of MinuteToPixel. A y inside a row's trailing
// margin resolves to that row's last instant. The result is clamped to
// [0, 1439].
func (l *Layout) PixelToMinute(y float64) float64 {
	if len(l.rows) == 0 || y <= 0 {
		return 0
	}
	r, ok := l.RowAt(y)
	if !ok {
		return constants.LastMinute
	}
	span := r.Item.Span()
	var minute float64
	if y < r.Bottom() {
		frac := (y - r.Top) / r.Height
		minute = float64(span.Start) + frac*float64(span.Duration())
	} else {
		minute = math.Nextafter(float64(span.End), math.Inf(-1))
	}
	return clampMinute(minute)
}

// RowAt returns the row whose span, including its trailing margin, holds y.
func (l *Layout) RowAt(y float64) (Row, bool) {
	if y < 0 {
		return Row{}, false
	}
	i := sort.Search(len(l.rows), func(i int) bool {
		return l.rows[i].Bottom()+l.metrics.RowMargin > y
	})
	if i >= len(l.rows) {
		return Row{}, false
	}
	return l.rows[i], true
}

// RowIndexForMinute returns the index of the row whose interval contains minute.
func (l *Layout) RowIndexForMinute(minute int) int {
	for i, r := range l.rows {
		if r.Item.Span().Contains(minute) {
			return i
		}
	}
	return len(l.rows) - 1
}

func clampMinute(m float64) float64 {
	if m < 0 {
		return 0
	}
	if m > constants.LastMinute {
		return constants.LastMinute
	}
	return m
}
