package polar

import (
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/timeline"
)

// Slice is a timeline item projected onto the clock face. StartAngle and
// EndAngle are display angles; ContentStart and ContentEnd are the same
// bounds before any semicircle compression.
type Slice struct {
	StartAngle            float64
	EndAngle              float64
	ContentStart          float64
	ContentEnd            float64
	Item                  timeline.Item
	Event                 *models.Event // earliest event of the item, nil when free
	IsFree                bool
	Color                 string
	OuterRadiusMultiplier float64
}

// Sweep is the slice's angular extent in content space.
func (s Slice) Sweep() float64 {
	return s.ContentEnd - s.ContentStart
}

// Slices merges the entries inside the projector's window and turns each
// resulting item into a slice.
func (p Projector) Slices(entries []timeline.Entry) []Slice {
	items := timeline.MergeWindow(entries, p.Window)
	slices := make([]Slice, 0, len(items))
	for i, item := range items {
		span := item.Span()
		s := Slice{
			ContentStart: p.ContentAngle(float64(span.Start)),
			ContentEnd:   p.ContentAngle(float64(span.End)),
			Item:         item,
		}
		s.StartAngle = p.AngleForMinute(float64(span.Start))
		s.EndAngle = p.AngleForMinute(float64(span.End))

		members := timeline.Events(item)
		if len(members) == 0 {
			s.IsFree = true
			s.Color = constants.FreeSliceColor
			s.OuterRadiusMultiplier = constants.FreeSliceRadius
		} else {
			ev := members[0].Event
			s.Event = &ev
			s.Color = ev.Color
			if s.Color == "" {
				s.Color = constants.DefaultEventColor
			}
			s.OuterRadiusMultiplier = RadiusMultiplier(ev.Title, i)
		}
		slices = append(slices, s)
	}
	return slices
}
