package models

import "testing"

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: 60, End: 120}

	tests := []struct {
		minute int
		want   bool
	}{
		{59, false},
		{60, true},
		{119, true},
		{120, false},
	}

	for _, tt := range tests {
		if got := iv.Contains(tt.minute); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{0, 60}, Interval{90, 120}, false},
		{"touching", Interval{0, 60}, Interval{60, 120}, false},
		{"partial", Interval{0, 60}, Interval{30, 90}, true},
		{"nested", Interval{0, 120}, Interval{30, 60}, true},
		{"identical", Interval{30, 60}, Interval{30, 60}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v and %v", tt.a, tt.b)
			}
		})
	}
}

func TestIntervalClamp(t *testing.T) {
	got := Interval{Start: 300, End: 400}.Clamp(360, 720)
	if got != (Interval{Start: 360, End: 400}) {
		t.Errorf("Clamp() = %v, want [360,400)", got)
	}

	outside := Interval{Start: 100, End: 200}.Clamp(360, 720)
	if !outside.Empty() {
		t.Errorf("Clamp() of disjoint interval = %v, want empty", outside)
	}
}
