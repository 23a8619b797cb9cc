// Package polar projects a day's events onto a clock face. Minutes are first
// mapped to content angles, where the active window fills a full circle
// starting at the top and running clockwise; a 6-hour window can then be
// compressed into a 180 degree display.
package polar

import (
	"math"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
)

// Projector maps minutes inside a window to angles and back.
type Projector struct {
	Window     models.Interval
	Semicircle bool
}

// New returns a projector for window. The semicircle display is used only for
// windows of exactly six hours.
func New(window models.Interval) Projector {
	return Projector{
		Window:     window,
		Semicircle: window.Duration() == constants.SemicircleMinutes,
	}
}

// NewFullDay returns a projector for the whole day on a full circle.
func NewFullDay() Projector {
	return New(models.Interval{Start: 0, End: constants.MinutesPerDay})
}

// ContentAngle maps a minute to its full-circle angle. Minutes outside the
// window are clamped to it first.
func (p Projector) ContentAngle(minute float64) float64 {
	ws, we := float64(p.Window.Start), float64(p.Window.End)
	minute = math.Max(ws, math.Min(we, minute))
	return (minute-ws)/(we-ws)*constants.FullCircleDegrees + constants.TopAngle
}

// MinuteForContentAngle is the inverse of ContentAngle. The angle is taken
// modulo 360 into [-90, 270) so the result always lies in [start, end).
func (p Projector) MinuteForContentAngle(angle float64) float64 {
	a := normalizeContent(angle)
	ws, we := float64(p.Window.Start), float64(p.Window.End)
	return ws + (a-constants.TopAngle)/constants.FullCircleDegrees*(we-ws)
}

// ToDisplay compresses a content angle into the semicircle.
func ToDisplay(content float64) float64 {
	return (content - constants.TopAngle) / constants.FullCircleDegrees * constants.SemicircleDegrees
}

// ToContent is the exact inverse of ToDisplay.
func ToContent(display float64) float64 {
	return display/constants.SemicircleDegrees*constants.FullCircleDegrees + constants.TopAngle
}

// AngleForMinute returns the angle a minute is drawn at.
func (p Projector) AngleForMinute(minute float64) float64 {
	c := p.ContentAngle(minute)
	if p.Semicircle {
		return ToDisplay(c)
	}
	return c
}

// MinuteForAngle maps a drawn angle back to a minute. On the semicircle the
// angle is clamped to [0, 180], so 180 is the end of the window.
func (p Projector) MinuteForAngle(angle float64) float64 {
	return p.minuteForContent(p.contentFromRaw(angle))
}

// minuteForContent inverts a content angle produced for this projector. The
// semicircle never wraps, so its content angles stay linear on [-90, 270].
func (p Projector) minuteForContent(content float64) float64 {
	if !p.Semicircle {
		return p.MinuteForContentAngle(content)
	}
	c := math.Max(constants.TopAngle, math.Min(constants.TopAngle+constants.FullCircleDegrees, content))
	ws, we := float64(p.Window.Start), float64(p.Window.End)
	return ws + (c-constants.TopAngle)/constants.FullCircleDegrees*(we-ws)
}

// contentFromRaw converts a raw drawn angle to content space, clamping to the
// semicircle when it is in use.
func (p Projector) contentFromRaw(angle float64) float64 {
	if !p.Semicircle {
		return angle
	}
	return ToContent(math.Max(0, math.Min(constants.SemicircleDegrees, angle)))
}

func normalizeContent(angle float64) float64 {
	a := math.Mod(angle-constants.TopAngle, constants.FullCircleDegrees)
	if a < 0 {
		a += constants.FullCircleDegrees
	}
	return a + constants.TopAngle
}

// Normalize maps any angle into [0, 360).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, constants.FullCircleDegrees)
	if a < 0 {
		a += constants.FullCircleDegrees
	}
	return a
}
