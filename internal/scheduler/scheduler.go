// Package scheduler finds room in a day for an event that has a duration but
// no fixed start.
package scheduler

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

// ErrNoRoom is returned when no free block can hold the request.
var ErrNoRoom = errors.New("no free block fits")

// Request describes the event to place. Earliest and Latest bound where it
// may start and end, in minutes from midnight; a zero Latest means end of day.
type Request struct {
	Duration int
	Earliest int
	Latest   int
}

func (r Request) bounds() (models.Interval, error) {
	latest := r.Latest
	if latest == 0 {
		latest = constants.MinutesPerDay
	}
	if r.Duration <= 0 {
		return models.Interval{}, fmt.Errorf("duration must be positive, got %d", r.Duration)
	}
	if r.Earliest < 0 || latest > constants.MinutesPerDay || r.Earliest >= latest {
		return models.Interval{}, fmt.Errorf("invalid placement bounds [%d,%d)", r.Earliest, latest)
	}
	return models.Interval{Start: r.Earliest, End: latest}, nil
}

// FreeBlocks returns the free time inside bounds, earliest first.
func FreeBlocks(entries []timeline.Entry, bounds models.Interval) []models.Interval {
	var blocks []models.Interval
	for _, item := range timeline.MergeWindow(entries, bounds) {
		if gap, ok := item.(timeline.GapItem); ok {
			blocks = append(blocks, gap.Interval)
		}
	}
	return blocks
}

// Place returns the earliest interval of the requested duration that overlaps
// no entry and stays within the request's bounds.
func Place(entries []timeline.Entry, req Request) (models.Interval, error) {
	bounds, err := req.bounds()
	if err != nil {
		return models.Interval{}, err
	}
	for _, block := range FreeBlocks(entries, bounds) {
		if block.Duration() >= req.Duration {
			return models.Interval{Start: block.Start, End: block.Start + req.Duration}, nil
		}
	}
	return models.Interval{}, fmt.Errorf("%w: %d minutes between %s and %s", ErrNoRoom, req.Duration,
		utils.MinutesToTime(bounds.Start), utils.MinutesToTime(bounds.End))
}
