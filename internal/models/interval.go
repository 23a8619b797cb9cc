package models

import "fmt"

// Interval is a half-open [Start, End) range of minutes from midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Contains reports whether minute m falls inside the half-open interval.
func (iv Interval) Contains(m int) bool {
	return iv.Start <= m && m < iv.End
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Clamp truncates the interval to [lo, hi]. The result may be empty.
func (iv Interval) Clamp(lo, hi int) Interval {
	out := iv
	if out.Start < lo {
		out.Start = lo
	}
	if out.End > hi {
		out.End = hi
	}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}
