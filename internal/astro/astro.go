// Package astro places decorative sun and moon markers on a fixed
// semicircular arc.
package astro

import (
	"math"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/utils"
)

// Point is a position in screen space, y growing downward.
type Point struct {
	X, Y float64
}

// Body identifies a marker on the arc.
type Body string

const (
	Sun  Body = "sun"
	Moon Body = "moon"
)

// Marker is a body placed on the arc.
type Marker struct {
	Body     Body
	Progress float64
	Position Point
}

// Arc holds the day's sunrise and sunset, in minutes from midnight.
type Arc struct {
	Sunrise int
	Sunset  int
}

// New parses sunrise and sunset. Either falls back to 06:00 or 18:00 when it
// is empty or unparsable, and both fall back when sunset is not after sunrise.
func New(sunrise, sunset string) Arc {
	rise, err := utils.ParseTimeToMinutes(sunrise)
	if err != nil {
		rise, _ = utils.ParseTimeToMinutes(constants.DefaultSunrise)
	}
	set, err := utils.ParseTimeToMinutes(sunset)
	if err != nil {
		set, _ = utils.ParseTimeToMinutes(constants.DefaultSunset)
	}
	if set <= rise {
		rise, _ = utils.ParseTimeToMinutes(constants.DefaultSunrise)
		set, _ = utils.ParseTimeToMinutes(constants.DefaultSunset)
	}
	return Arc{Sunrise: rise, Sunset: set}
}

// SunProgress is how far through the daylight interval minute is.
func (a Arc) SunProgress(minute float64) (float64, bool) {
	p := (minute - float64(a.Sunrise)) / float64(a.Sunset-a.Sunrise)
	return p, p >= 0 && p <= 1
}

// MoonProgress is how far through the night [sunset, sunrise+1440) minute
// is, wrapping past midnight.
func (a Arc) MoonProgress(minute float64) (float64, bool) {
	night := float64(a.Sunrise + constants.MinutesPerDay - a.Sunset)
	var elapsed float64
	switch {
	case minute >= float64(a.Sunset):
		elapsed = minute - float64(a.Sunset)
	case minute < float64(a.Sunrise):
		elapsed = minute + constants.MinutesPerDay - float64(a.Sunset)
	default:
		return 0, false
	}
	p := elapsed / night
	return p, p >= 0 && p < 1
}

// Point places progress p on the arc: p=0 at the left end, p=1 at the right
// end, p=0.5 at the top.
func (a Arc) Point(p float64, center Point, radius float64) Point {
	theta := math.Pi - math.Pi*p
	return Point{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y - radius*math.Sin(theta),
	}
}

// Markers returns the bodies visible at minute.
func (a Arc) Markers(minute float64, center Point, radius float64) []Marker {
	var out []Marker
	if p, ok := a.SunProgress(minute); ok {
		out = append(out, Marker{Body: Sun, Progress: p, Position: a.Point(p, center, radius)})
	}
	if p, ok := a.MoonProgress(minute); ok {
		out = append(out, Marker{Body: Moon, Progress: p, Position: a.Point(p, center, radius)})
	}
	return out
}
