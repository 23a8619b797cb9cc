// Package gesture turns pointer input on the linear timeline into proposed
// time ranges.
package gesture

import (
	"math"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

// Proposal is a time range offered to the host as a create-event request.
type Proposal struct {
	Start int
	End   int
}

func (p Proposal) StartTime() string {
	return utils.MinutesToTime(p.Start)
}

func (p Proposal) EndTime() string {
	return utils.MinutesToTime(p.End)
}

func (p Proposal) Duration() int {
	return p.End - p.Start
}

// ProposeBlock proposes a block inside gap for a tap at minute. The start is
// floored to the snap boundary and the block runs for the default length or
// until the gap ends. A block is never shorter than the minimum selection
// unless the gap itself is.
func ProposeBlock(minute int, gap models.Interval) Proposal {
	start := minute - minute%constants.SnapMinutes
	if start < gap.Start {
		start = gap.Start
	}
	if start > gap.End-constants.MinSelectionMinutes {
		start = max(gap.Start, gap.End-constants.MinSelectionMinutes)
	}
	end := min(gap.End, start+constants.DefaultBlockMinutes)
	if end-start < constants.MinSelectionMinutes {
		start = max(gap.Start, end-constants.MinSelectionMinutes)
	}
	return Proposal{Start: start, End: end}
}

// TapKind says what a tap on the timeline landed on.
type TapKind int

const (
	TapNone TapKind = iota
	TapGap
	TapEvent
)

// TapResult is the outcome of a tap on the linear timeline.
type TapResult struct {
	Kind     TapKind
	Minute   int
	Proposal Proposal // set for TapGap
	Event    *models.Event
}

// Tap resolves a tap at content offset y. Taps on free rows propose a block;
// taps on event rows report the event, picking the stacked tile for groups.
func Tap(l *timeline.Layout, y float64) TapResult {
	row, ok := l.RowAt(y)
	if !ok {
		return TapResult{Kind: TapNone}
	}
	span := row.Item.Span()
	minute := max(span.Start, min(tapMinute(l, y), span.End-1))

	switch it := row.Item.(type) {
	case timeline.GapItem:
		return TapResult{Kind: TapGap, Minute: minute, Proposal: ProposeBlock(minute, it.Interval)}
	case timeline.EventItem:
		ev := it.Event
		return TapResult{Kind: TapEvent, Minute: minute, Event: &ev}
	case timeline.GroupItem:
		m := l.Metrics()
		idx := int((y - row.Top) / (m.TileHeight + m.TileGap))
		idx = max(0, min(idx, len(it.Entries)-1))
		ev := it.Entries[idx].Event
		return TapResult{Kind: TapEvent, Minute: minute, Event: &ev}
	}
	return TapResult{Kind: TapNone}
}

// MinuteAt returns the whole minute under content offset y, rounded. Drag
// selections use it so an edge lands on the nearest minute line.
func MinuteAt(l *timeline.Layout, y float64) int {
	return int(math.Round(l.PixelToMinute(y)))
}

// tapMinute is the minute a tap falls inside. It floors, so a tap never
// rounds forward into the next snap slot. The epsilon absorbs float error
// from a minute -> pixel -> minute round trip.
func tapMinute(l *timeline.Layout, y float64) int {
	return int(math.Floor(l.PixelToMinute(y) + 1e-9))
}
