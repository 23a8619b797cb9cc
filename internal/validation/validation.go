package validation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/utils"
)

var (
	// ErrInvalidTime is returned when an event carries a time that is not HH:MM.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidInterval is returned when an event does not start before it ends.
	ErrInvalidInterval = errors.New("invalid interval")
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime       ConflictType = "invalid_time"
	ConflictInvalidInterval   ConflictType = "invalid_interval"
	ConflictMissingEventID    ConflictType = "missing_event_id"
	ConflictDuplicateEventID  ConflictType = "duplicate_event_id"
	ConflictOverlappingEvents ConflictType = "overlapping_events"
)

// Conflict represents a detected problem in a day's events
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Event titles involved
	TimeRange   string   // Human-readable time range (if applicable)
	EventIDs    []string
}

// Blocking reports whether the conflict keeps the events out of a layout pass.
// Overlaps are only reported; the layout groups them.
func (c Conflict) Blocking() bool {
	return c.Type == ConflictInvalidTime || c.Type == ConflictInvalidInterval
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasBlocking returns true if any conflict would be rejected at layout time
func (vr *ValidationResult) HasBlocking() bool {
	for _, c := range vr.Conflicts {
		if c.Blocking() {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// EventInterval parses an event's HH:MM times into a half-open minute interval.
// An end time of midnight means the end of the day.
func EventInterval(ev models.Event) (models.Interval, error) {
	start, err := utils.ParseTimeToMinutes(ev.StartTime)
	if err != nil {
		return models.Interval{}, fmt.Errorf("%w: event %q start %q", ErrInvalidTime, ev.Title, ev.StartTime)
	}
	end, err := utils.ParseEndTimeToMinutes(ev.EndTime)
	if err != nil {
		return models.Interval{}, fmt.Errorf("%w: event %q end %q", ErrInvalidTime, ev.Title, ev.EndTime)
	}
	if start >= end {
		return models.Interval{}, fmt.Errorf("%w: event %q starts at %s but ends at %s", ErrInvalidInterval, ev.Title, ev.StartTime, ev.EndTime)
	}
	return models.Interval{Start: start, End: end}, nil
}

// Validator validates a day's events
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateEvents checks events for malformed times, identity problems and overlaps.
func (v *Validator) ValidateEvents(events []models.Event) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[string][]string)
	type parsed struct {
		ev models.Event
		iv models.Interval
	}
	var valid []parsed

	for _, ev := range events {
		if ev.DeletedAt != nil {
			continue
		}

		if ev.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingEventID,
				Description: fmt.Sprintf("Event \"%s\" has no ID", ev.Title),
				Items:       []string{ev.Title},
			})
		} else {
			idCount[ev.ID] = append(idCount[ev.ID], ev.Title)
		}

		iv, err := EventInterval(ev)
		if err != nil {
			ct := ConflictInvalidTime
			if errors.Is(err, ErrInvalidInterval) {
				ct = ConflictInvalidInterval
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ct,
				Description: err.Error(),
				Items:       []string{ev.Title},
				TimeRange:   fmt.Sprintf("%s-%s", ev.StartTime, ev.EndTime),
				EventIDs:    []string{ev.ID},
			})
			continue
		}
		valid = append(valid, parsed{ev: ev, iv: iv})
	}

	ids := make([]string, 0, len(idCount))
	for id := range idCount {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		titles := idCount[id]
		if len(titles) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateEventID,
				Description: fmt.Sprintf("Duplicate event ID: %s (%v)", id, titles),
				Items:       titles,
				EventIDs:    []string{id},
			})
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].iv.Start != valid[j].iv.Start {
			return valid[i].iv.Start < valid[j].iv.Start
		}
		return valid[i].iv.End < valid[j].iv.End
	})

	// Sorted by start, so the inner loop can stop at the first non-overlap.
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			a, b := valid[i], valid[j]
			if b.iv.Start >= a.iv.End {
				break
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOverlappingEvents,
				Description: fmt.Sprintf("Events overlap: \"%s\" (%s-%s) and \"%s\" (%s-%s)",
					a.ev.Title, a.ev.StartTime, a.ev.EndTime, b.ev.Title, b.ev.StartTime, b.ev.EndTime),
				Items:     []string{a.ev.Title, b.ev.Title},
				TimeRange: fmt.Sprintf("%s-%s", utils.MinutesToTime(b.iv.Start), utils.MinutesToTime(min(a.iv.End, b.iv.End))),
				EventIDs:  []string{a.ev.ID, b.ev.ID},
			})
		}
	}

	return result
}
