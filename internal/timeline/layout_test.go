package timeline

import (
	"math"
	"testing"
)

func sampleLayout() *Layout {
	items := Merge([]Entry{
		entry("a", 0, 60),
		entry("b", 30, 90),
		entry("c", 200, 260),
		entry("d", 600, 610),
		entry("e", 700, 720),
		entry("f", 700, 720),
		entry("g", 705, 715),
	})
	return NewLayout(items, DefaultMetrics())
}

func TestRowHeight(t *testing.T) {
	m := DefaultMetrics()

	tests := []struct {
		name string
		item Item
		want float64
	}{
		{"proportional gap", GapItem{Interval: FullDay}, 1440 * m.PixelsPerMinute},
		{"short event uses floor", EventItem{Entry: entry("x", 600, 610)}, m.MinRowHeight},
		{
			"long group stays proportional",
			GroupItem{Entries: []Entry{entry("a", 0, 60), entry("b", 30, 90)}, Interval: FullDay},
			1440 * m.PixelsPerMinute,
		},
		{
			"short group uses stacked tiles",
			GroupItem{Entries: []Entry{entry("a", 0, 20), entry("b", 0, 20), entry("c", 5, 15)}, Interval: entry("a", 0, 20).Interval},
			3*m.TileHeight + 2*m.TileGap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.RowHeight(tt.item); got != tt.want {
				t.Errorf("RowHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentHeight(t *testing.T) {
	l := sampleLayout()
	sum := 0.0
	for _, r := range l.Rows() {
		sum += r.Height + l.Metrics().RowMargin
	}
	if l.ContentHeight() != sum {
		t.Errorf("ContentHeight() = %v, want %v", l.ContentHeight(), sum)
	}
}

func TestMinuteToPixel_Monotonic(t *testing.T) {
	l := sampleLayout()
	prev := -1.0
	for m := 0; m <= 1440; m++ {
		y := l.MinuteToPixel(float64(m))
		if y <= prev {
			t.Fatalf("MinuteToPixel(%d) = %v, not greater than previous %v", m, y, prev)
		}
		prev = y
	}
}

func TestMinuteToPixel_RowBoundaries(t *testing.T) {
	l := sampleLayout()
	rows := l.Rows()
	for i := 1; i < len(rows); i++ {
		start := float64(rows[i].Item.Span().Start)
		if got := l.MinuteToPixel(start); got != rows[i].Top {
			t.Errorf("row %d starts at minute %v, pixel %v, want %v", i, start, got, rows[i].Top)
		}
		gap := rows[i].Top - rows[i-1].Bottom()
		if gap != l.Metrics().RowMargin {
			t.Errorf("rows %d and %d are %v apart, want %v", i-1, i, gap, l.Metrics().RowMargin)
		}
	}
}

func TestRoundTrip_MinuteToPixelToMinute(t *testing.T) {
	l := sampleLayout()
	for _, r := range l.Rows() {
		span := r.Item.Span()
		for m := span.Start + 1; m < span.End; m++ {
			if m > 1439 {
				continue
			}
			got := l.PixelToMinute(l.MinuteToPixel(float64(m)))
			if math.Abs(got-float64(m)) > 1e-6 {
				t.Fatalf("round trip of minute %d = %v", m, got)
			}
		}
	}
}

func TestRoundTrip_PixelLandsInSameRow(t *testing.T) {
	l := sampleLayout()
	for y := 0.0; y < l.ContentHeight(); y += 0.5 {
		before, ok := l.RowAt(y)
		if !ok {
			t.Fatalf("RowAt(%v) found no row inside content height", y)
		}
		after, ok := l.RowAt(l.MinuteToPixel(l.PixelToMinute(y)))
		if !ok {
			t.Fatalf("round trip of y=%v left the content", y)
		}
		if before.Top != after.Top {
			t.Fatalf("y=%v is in row at %v but round trips to row at %v", y, before.Top, after.Top)
		}
	}
}

func TestPixelToMinute_Clamps(t *testing.T) {
	l := sampleLayout()
	if got := l.PixelToMinute(-20); got != 0 {
		t.Errorf("PixelToMinute(-20) = %v, want 0", got)
	}
	if got := l.PixelToMinute(l.ContentHeight() + 100); got != 1439 {
		t.Errorf("PixelToMinute(past end) = %v, want 1439", got)
	}
}

func TestPixelToMinute_MarginBelongsToRowAbove(t *testing.T) {
	l := sampleLayout()
	first := l.Rows()[0]
	m := l.PixelToMinute(first.Bottom() + l.Metrics().RowMargin/2)
	if m >= float64(first.Item.Span().End) {
		t.Errorf("margin pixel resolved to %v, want inside %v", m, first.Item.Span())
	}
}
