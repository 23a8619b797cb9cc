// Package timeline merges a day's events into an ordered, gap-filled sequence
// of rows and lays those rows out in pixel space.
package timeline

import (
	"fmt"

	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/validation"
)

// Entry is an event whose times have been checked and parsed.
type Entry struct {
	Event    models.Event
	Interval models.Interval
}

// NewEntries is the boundary where events enter the engine. It rejects any
// event that is not a valid single-day interval.
func NewEntries(events []models.Event) ([]Entry, error) {
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		if ev.DeletedAt != nil {
			continue
		}
		iv, err := validation.EventInterval(ev)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", ev.ID, err)
		}
		entries = append(entries, Entry{Event: ev, Interval: iv})
	}
	return entries, nil
}

// Item is one row of the timeline: an EventItem, a GroupItem or a GapItem.
type Item interface {
	Span() models.Interval
	isItem()
}

// EventItem is a single event that overlaps nothing else.
type EventItem struct {
	Entry
}

// GroupItem is a set of events that overlap pairwise or transitively.
type GroupItem struct {
	Entries  []Entry
	Interval models.Interval
}

// GapItem is free time. Gaps are never empty and never adjacent to each other.
type GapItem struct {
	Interval models.Interval
}

func (e EventItem) Span() models.Interval { return e.Interval }
func (g GroupItem) Span() models.Interval { return g.Interval }
func (g GapItem) Span() models.Interval   { return g.Interval }

func (EventItem) isItem() {}
func (GroupItem) isItem() {}
func (GapItem) isItem()   {}

// Events returns the entries carried by an item, earliest first. Gaps carry none.
func Events(item Item) []Entry {
	switch it := item.(type) {
	case EventItem:
		return []Entry{it.Entry}
	case GroupItem:
		return it.Entries
	default:
		return nil
	}
}

// IsGap reports whether the item is free time.
func IsGap(item Item) bool {
	_, ok := item.(GapItem)
	return ok
}

// Kind returns a short label for the item variant.
func Kind(item Item) string {
	switch item.(type) {
	case EventItem:
		return "event"
	case GroupItem:
		return "group"
	case GapItem:
		return "gap"
	default:
		return "unknown"
	}
}
