// Package rotation turns horizontal drags on the semicircle into a bounded,
// snapped rotation offset and window paging.
package rotation

import (
	"math"

	"github.com/julianstephens/dayface/internal/constants"
)

// Phase is the controller's gesture phase.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Settling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "unknown"
	}
}

// Direction is a request to move the displayed window.
type Direction int

const (
	NoPage   Direction = 0
	Forward  Direction = 1  // next window
	Backward Direction = -1 // previous window
)

// State is the rotation transient owned by the host between renders.
type State struct {
	Phase      Phase
	Offset     float64
	BaseOffset float64
	Pending    Direction
}

// Config holds the rotation constants.
type Config struct {
	DegPerPixel   float64
	MaxOffset     float64
	Snap          float64
	PageThreshold float64
}

// DefaultConfig returns the built-in rotation constants.
func DefaultConfig() Config {
	return Config{
		DegPerPixel:   constants.DegPerPixel,
		MaxOffset:     constants.MaxRotation,
		Snap:          constants.RotationSnap,
		PageThreshold: constants.PageThreshold,
	}
}

// Begin records the offset the drag starts from.
func (c Config) Begin(s State) State {
	return State{Phase: Dragging, Offset: s.Offset, BaseOffset: s.Offset}
}

// Update applies the total horizontal drag distance dx since Begin.
func (c Config) Update(s State, dx float64) State {
	if s.Phase != Dragging {
		return s
	}
	s.Offset = c.clamp(s.BaseOffset + dx*c.DegPerPixel)
	return s
}

// Release snaps the offset and decides whether the window should page. Past
// the threshold the offset resets to zero and the page waits in Pending.
func (c Config) Release(s State) State {
	if s.Phase != Dragging {
		return s
	}
	snapped := c.clamp(math.Round(s.Offset/c.Snap) * c.Snap)
	s.Phase = Settling
	s.Pending = NoPage
	switch {
	case snapped <= -c.PageThreshold:
		s.Pending = Forward
		snapped = 0
	case snapped >= c.PageThreshold:
		s.Pending = Backward
		snapped = 0
	}
	s.Offset = snapped
	return s
}

// Settle returns to idle, handing back at most one page request.
func (c Config) Settle(s State) (State, Direction) {
	if s.Phase != Settling {
		return s, NoPage
	}
	dir := s.Pending
	return State{Phase: Idle, Offset: s.Offset, BaseOffset: s.Offset}, dir
}

// Cancel abandons a drag and restores the offset it started from.
func (c Config) Cancel(s State) State {
	return State{Phase: Idle, Offset: s.BaseOffset, BaseOffset: s.BaseOffset}
}

func (c Config) clamp(v float64) float64 {
	return math.Max(-c.MaxOffset, math.Min(c.MaxOffset, v))
}

// Controller drives a State through a gesture and reports page requests.
type Controller struct {
	Config Config
	State  State
	OnPage func(Direction)
}

// NewController returns an idle controller using the default constants.
func NewController(onPage func(Direction)) *Controller {
	return &Controller{Config: DefaultConfig(), OnPage: onPage}
}

func (c *Controller) Start() {
	c.State = c.Config.Begin(c.State)
}

func (c *Controller) Move(dx float64) {
	c.State = c.Config.Update(c.State, dx)
}

// End releases the drag and settles, firing OnPage when a page was requested.
func (c *Controller) End() Direction {
	c.State = c.Config.Release(c.State)
	var dir Direction
	c.State, dir = c.Config.Settle(c.State)
	if dir != NoPage && c.OnPage != nil {
		c.OnPage(dir)
	}
	return dir
}

func (c *Controller) Cancel() {
	c.State = c.Config.Cancel(c.State)
}

func (c *Controller) Offset() float64 {
	return c.State.Offset
}
