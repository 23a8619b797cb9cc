package timeline

import (
	"sort"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
)

// FullDay is the range every full-day merge tiles.
var FullDay = models.Interval{Start: 0, End: constants.MinutesPerDay}

// Merge turns a day's entries into items tiling [0, 1440): single events,
// transitively-overlapping groups and the free gaps between them.
func Merge(entries []Entry) []Item {
	return MergeWindow(entries, FullDay)
}

// MergeWindow runs the same merge restricted to window. Entries crossing a
// window bound are truncated to it; entries outside it are ignored.
func MergeWindow(entries []Entry, window models.Interval) []Item {
	var inside []Entry
	for _, e := range entries {
		iv := e.Interval.Clamp(window.Start, window.End)
		if iv.Empty() {
			continue
		}
		inside = append(inside, Entry{Event: e.Event, Interval: iv})
	}

	sort.SliceStable(inside, func(i, j int) bool {
		if inside[i].Interval.Start != inside[j].Interval.Start {
			return inside[i].Interval.Start < inside[j].Interval.Start
		}
		return inside[i].Interval.End < inside[j].Interval.End
	})

	var items []Item
	cursor := window.Start

	for i := 0; i < len(inside); {
		first := inside[i]
		if first.Interval.Start > cursor {
			items = append(items, GapItem{Interval: models.Interval{Start: cursor, End: first.Interval.Start}})
		}

		group := []Entry{first}
		end := first.Interval.End
		i++
		// Compare against the running union so chains of overlaps merge.
		for i < len(inside) && inside[i].Interval.Start < end {
			group = append(group, inside[i])
			end = max(end, inside[i].Interval.End)
			i++
		}

		span := models.Interval{Start: first.Interval.Start, End: end}
		if len(group) == 1 {
			items = append(items, EventItem{Entry: first})
		} else {
			items = append(items, GroupItem{Entries: group, Interval: span})
		}
		cursor = max(cursor, end)
	}

	if cursor < window.End {
		items = append(items, GapItem{Interval: models.Interval{Start: cursor, End: window.End}})
	}

	return items
}
