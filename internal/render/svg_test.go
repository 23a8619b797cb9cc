package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/timeline"
)

func sampleEntries(t *testing.T) []timeline.Entry {
	t.Helper()
	entries, err := timeline.NewEntries([]models.Event{
		{ID: "1", Title: "Sleep", StartTime: "00:00", EndTime: "06:00"},
		{ID: "2", Title: "Work <core>", StartTime: "09:00", EndTime: "12:00"},
		{ID: "3", Title: "Call", StartTime: "11:00", EndTime: "13:00"},
	})
	if err != nil {
		t.Fatalf("NewEntries() error = %v", err)
	}
	return entries
}

func TestClock_OnePathPerSlice(t *testing.T) {
	p := polar.NewFullDay()
	slices := p.Slices(sampleEntries(t))

	var buf bytes.Buffer
	if err := Clock(&buf, p, slices, DefaultClockOptions()); err != nil {
		t.Fatalf("Clock() error = %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "<path "); got != len(slices) {
		t.Errorf("path count = %d, want %d", got, len(slices))
	}
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output is not a complete svg document")
	}
	if strings.Contains(out, "<core>") {
		t.Error("event title was not escaped")
	}
	if !strings.Contains(out, "Work &lt;core&gt;") {
		t.Error("escaped title missing")
	}
}

func TestClock_NowHandAndMarkers(t *testing.T) {
	p := polar.NewFullDay()
	arc := astro.New("06:00", "18:00")
	opts := DefaultClockOptions()
	opts.NowMinute = 720
	opts.Arc = &arc

	var buf bytes.Buffer
	if err := Clock(&buf, p, p.Slices(nil), opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `class="now"`) {
		t.Error("missing now hand")
	}
	if !strings.Contains(out, `class="sun"`) || strings.Contains(out, `class="moon"`) {
		t.Error("expected only the sun at noon")
	}
}

func TestClock_HandOutsideWindow(t *testing.T) {
	p := polar.New(models.Interval{Start: 360, End: 720})
	opts := DefaultClockOptions()
	opts.NowMinute = 100

	var buf bytes.Buffer
	if err := Clock(&buf, p, p.Slices(nil), opts); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `class="now"`) {
		t.Error("hand drawn for a minute outside the window")
	}
}

func TestWedgePath(t *testing.T) {
	tests := []struct {
		name      string
		sweep     float64
		wantLarge string
		arcs      int
	}{
		{"quarter", 90, " 0 0 1 ", 1},
		{"major", 270, " 0 1 1 ", 1},
		{"full", 360, " 0 1 1 ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := wedgePath(100, 100, 50, -90, tt.sweep)
			if !strings.Contains(d, tt.wantLarge) {
				t.Errorf("path %q missing flags %q", d, tt.wantLarge)
			}
			if got := strings.Count(d, " A "); got != tt.arcs {
				t.Errorf("arc count = %d, want %d", got, tt.arcs)
			}
		})
	}
}

func TestPointAt(t *testing.T) {
	x, y := pointAt(0, 0, 10, -90)
	if math.Abs(x) > 1e-9 || math.Abs(y+10) > 1e-9 {
		t.Errorf("pointAt(-90) = (%v, %v), want (0, -10)", x, y)
	}
}

func TestTimeline_RowsAndTiles(t *testing.T) {
	items := timeline.Merge(sampleEntries(t))
	l := timeline.NewLayout(items, timeline.DefaultMetrics())

	var buf bytes.Buffer
	if err := Timeline(&buf, l, TimelineOptions{}); err != nil {
		t.Fatalf("Timeline() error = %v", err)
	}
	out := buf.String()

	gaps := 0
	for _, it := range items {
		if timeline.IsGap(it) {
			gaps++
		}
	}
	if got := strings.Count(out, `class="gap"`); got != gaps {
		t.Errorf("gap rects = %d, want %d", got, gaps)
	}
	if got := strings.Count(out, `class="event"`); got != 3 {
		t.Errorf("event tiles = %d, want 3", got)
	}
}
