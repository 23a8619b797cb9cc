package polar

import (
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
)

// WindowAt returns the aligned window of the given length holding minute.
func WindowAt(minute, hours int) models.Interval {
	size := hours * constants.MinutesPerHour
	if size <= 0 || size >= constants.MinutesPerDay {
		return models.Interval{Start: 0, End: constants.MinutesPerDay}
	}
	minute = max(0, min(minute, constants.LastMinute))
	start := (minute / size) * size
	end := min(start+size, constants.MinutesPerDay)
	return models.Interval{Start: start, End: end}
}

// PageWindow shifts a window by its own length in direction dir (+1 later,
// -1 earlier), wrapping around the day.
func PageWindow(w models.Interval, dir int) models.Interval {
	size := w.Duration()
	if size <= 0 || size >= constants.MinutesPerDay {
		return w
	}
	start := (w.Start + dir*size) % constants.MinutesPerDay
	if start < 0 {
		start += constants.MinutesPerDay
	}
	if start+size > constants.MinutesPerDay {
		if dir > 0 {
			start = 0
		} else {
			start = constants.MinutesPerDay - size
		}
	}
	return models.Interval{Start: start, End: start + size}
}
