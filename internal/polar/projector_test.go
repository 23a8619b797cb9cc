package polar

import (
	"math"
	"testing"

	"github.com/julianstephens/dayface/internal/models"
)

const epsilon = 1e-9

func TestFullDayAngles(t *testing.T) {
	p := NewFullDay()
	if p.Semicircle {
		t.Fatal("full day projector should not use the semicircle")
	}

	tests := []struct {
		minute float64
		want   float64
	}{
		{0, -90},
		{360, 0},
		{720, 90},
		{1080, 180},
		{1440, 270},
	}

	for _, tt := range tests {
		if got := p.AngleForMinute(tt.minute); math.Abs(got-tt.want) > epsilon {
			t.Errorf("AngleForMinute(%v) = %v, want %v", tt.minute, got, tt.want)
		}
		if tt.minute < 1440 {
			if got := p.MinuteForAngle(tt.want); math.Abs(got-tt.minute) > epsilon {
				t.Errorf("MinuteForAngle(%v) = %v, want %v", tt.want, got, tt.minute)
			}
		}
	}
}

func TestWindowedAngles_ClampIntoWindow(t *testing.T) {
	p := New(models.Interval{Start: 360, End: 720})
	if got := p.ContentAngle(100); got != -90 {
		t.Errorf("ContentAngle(before window) = %v, want -90", got)
	}
	if got := p.ContentAngle(900); got != 270 {
		t.Errorf("ContentAngle(after window) = %v, want 270", got)
	}
	if got := p.ContentAngle(540); got != 90 {
		t.Errorf("ContentAngle(540) = %v, want 90", got)
	}
}

func TestSemicircleInvolution(t *testing.T) {
	for theta := -90.0; theta < 270; theta += 0.37 {
		got := ToContent(ToDisplay(theta))
		if math.Abs(got-theta) > 1e-9 {
			t.Fatalf("ToContent(ToDisplay(%v)) = %v", theta, got)
		}
		display := ToDisplay(theta)
		if display < 0 || display >= 180 {
			t.Fatalf("ToDisplay(%v) = %v, outside [0,180)", theta, display)
		}
	}
}

func TestSemicircleOnlyForSixHours(t *testing.T) {
	if !New(models.Interval{Start: 360, End: 720}).Semicircle {
		t.Error("6-hour window should use the semicircle")
	}
	if New(models.Interval{Start: 360, End: 600}).Semicircle {
		t.Error("4-hour window should not use the semicircle")
	}
}

func TestMinuteForAngle_Semicircle(t *testing.T) {
	p := New(models.Interval{Start: 360, End: 720})
	for m := 360.0; m < 720; m += 7.5 {
		got := p.MinuteForAngle(p.AngleForMinute(m))
		if math.Abs(got-m) > 1e-9 {
			t.Fatalf("round trip of minute %v = %v", m, got)
		}
	}
	if got := p.MinuteForAngle(-40); got != 360 {
		t.Errorf("MinuteForAngle(-40) = %v, want window start", got)
	}
	for _, angle := range []float64{180, 200} {
		if got := p.MinuteForAngle(angle); got != 720 {
			t.Errorf("MinuteForAngle(%v) = %v, want window end", angle, got)
		}
	}
}

func TestWindowAt(t *testing.T) {
	tests := []struct {
		minute, hours int
		want          models.Interval
	}{
		{450, 6, models.Interval{Start: 360, End: 720}},
		{0, 6, models.Interval{Start: 0, End: 360}},
		{1439, 6, models.Interval{Start: 1080, End: 1440}},
		{600, 24, models.Interval{Start: 0, End: 1440}},
	}
	for _, tt := range tests {
		if got := WindowAt(tt.minute, tt.hours); got != tt.want {
			t.Errorf("WindowAt(%d, %d) = %v, want %v", tt.minute, tt.hours, got, tt.want)
		}
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name string
		in   models.Interval
		dir  int
		want models.Interval
	}{
		{"forward", models.Interval{Start: 360, End: 720}, 1, models.Interval{Start: 720, End: 1080}},
		{"backward", models.Interval{Start: 360, End: 720}, -1, models.Interval{Start: 0, End: 360}},
		{"wraps forward", models.Interval{Start: 1080, End: 1440}, 1, models.Interval{Start: 0, End: 360}},
		{"wraps backward", models.Interval{Start: 0, End: 360}, -1, models.Interval{Start: 1080, End: 1440}},
		{"full day unchanged", models.Interval{Start: 0, End: 1440}, 1, models.Interval{Start: 0, End: 1440}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageWindow(tt.in, tt.dir); got != tt.want {
				t.Errorf("PageWindow(%v, %d) = %v, want %v", tt.in, tt.dir, got, tt.want)
			}
		})
	}
}
