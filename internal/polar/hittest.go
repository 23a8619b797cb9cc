package polar

import (
	"math"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/gesture"
	"github.com/julianstephens/dayface/internal/models"
)

// HitKind says what a tap on the clock face resolved to.
type HitKind int

const (
	HitNone HitKind = iota
	HitEvent
	HitFree
)

// Hit is the result of a tap on the clock face.
type Hit struct {
	Kind         HitKind
	ContentAngle float64
	Minute       int
	Slice        *Slice
	Event        *models.Event
	Proposal     gesture.Proposal // set for HitFree
}

// Callbacks are the host's handlers for clock-face taps.
type Callbacks struct {
	OnEventTap      func(eventID string)
	OnFreeRegionTap func(startTime, endTime string)
}

// ArcContains reports whether angle a lies on the arc from start to end,
// inclusive, going clockwise. All three are normalized to [0, 360) first.
func ArcContains(a, start, end float64) bool {
	a, start, end = Normalize(a), Normalize(start), Normalize(end)
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}

// HitTest resolves a tap at (x, y), relative to the circle centre with y
// growing downward. A tap on free time proposes a block the same way a tap
// on the linear timeline does.
func (p Projector) HitTest(slices []Slice, x, y float64) Hit {
	raw := math.Atan2(y, x) * 180 / math.Pi
	content := p.contentFromRaw(raw)
	return p.HitContent(slices, content)
}

// HitContent resolves a tap already expressed as a content angle.
func (p Projector) HitContent(slices []Slice, content float64) Hit {
	if len(slices) == 0 {
		return Hit{Kind: HitNone, ContentAngle: content}
	}
	minute := p.minuteAt(content)

	idx := -1
	for i := range slices {
		s := slices[i]
		if p.sliceContains(s, content) {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = nearestFree(slices, content)
		if idx < 0 {
			return Hit{Kind: HitNone, ContentAngle: content, Minute: minute}
		}
		span := slices[idx].Item.Span()
		minute = max(span.Start, min(minute, span.End-1))
	}

	s := &slices[idx]
	if !s.IsFree {
		return Hit{Kind: HitEvent, ContentAngle: content, Minute: minute, Slice: s, Event: s.Event}
	}
	return Hit{
		Kind:         HitFree,
		ContentAngle: content,
		Minute:       minute,
		Slice:        s,
		Proposal:     gesture.ProposeBlock(minute, s.Item.Span()),
	}
}

// Dispatch hands a hit to the matching callback. Nil callbacks are skipped.
func Dispatch(h Hit, cb Callbacks) {
	switch h.Kind {
	case HitEvent:
		if cb.OnEventTap != nil && h.Event != nil {
			cb.OnEventTap(h.Event.ID)
		}
	case HitFree:
		if cb.OnFreeRegionTap != nil {
			cb.OnFreeRegionTap(h.Proposal.StartTime(), h.Proposal.EndTime())
		}
	}
}

// sliceContains tests a content angle against a slice, bounds inclusive. The
// semicircle compares linearly so that 270, the window end, only lands on the
// last slice.
func (p Projector) sliceContains(s Slice, content float64) bool {
	if p.Semicircle {
		return content >= s.ContentStart && content <= s.ContentEnd
	}
	return s.Sweep() >= constants.FullCircleDegrees || ArcContains(content, s.ContentStart, s.ContentEnd)
}

func (p Projector) minuteAt(content float64) int {
	m := int(math.Floor(p.minuteForContent(content)))
	return max(p.Window.Start, min(m, p.Window.End-1))
}

// nearestFree returns the free slice with a bound closest to the angle.
func nearestFree(slices []Slice, content float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, s := range slices {
		if !s.IsFree {
			continue
		}
		d := math.Min(angularDistance(content, s.ContentStart), angularDistance(content, s.ContentEnd))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func angularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	return math.Min(d, constants.FullCircleDegrees-d)
}
