package gesture

import (
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/timeline"
)

// Selection is the live range of a drag on the timeline. It is owned by the
// host between Begin and End; abandoning a drag is just dropping it.
type Selection struct {
	StartMinute int
	EndMinute   int
}

// Bounds returns the selection ordered low to high.
func (s Selection) Bounds() (lo, hi int) {
	return min(s.StartMinute, s.EndMinute), max(s.StartMinute, s.EndMinute)
}

// Begin starts a selection at the drag origin.
func Begin(l *timeline.Layout, y float64) Selection {
	m := MinuteAt(l, y)
	return Selection{StartMinute: m, EndMinute: m}
}

// Update moves the selection's free end to the current pointer offset.
func Update(s Selection, l *timeline.Layout, y float64) Selection {
	s.EndMinute = MinuteAt(l, y)
	return s
}

// End finishes a drag. Selections shorter than the minimum become a
// default-length block from the earlier end.
func End(s Selection) Proposal {
	lo, hi := s.Bounds()
	if hi-lo < constants.MinSelectionMinutes {
		hi = lo + constants.DefaultBlockMinutes
	}
	if hi > constants.MinutesPerDay {
		hi = constants.MinutesPerDay
	}
	if hi-lo < constants.MinSelectionMinutes {
		lo = hi - constants.MinSelectionMinutes
	}
	return Proposal{Start: lo, End: hi}
}
