package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/gesture"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/rotation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = max(1, msg.Width-2)
		m.viewport.Height = max(1, msg.Height-headerLines-footerLines)
		m.refreshViewport()
		return m, nil

	case tickMsg:
		t := time.Time(msg)
		m.nowMinute = t.Hour()*constants.MinutesPerHour + t.Minute()
		m.refreshViewport()
		return m, tickEvery()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateConfirmDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.deleteSelected()
			m.state = m.previousState
			m.refreshViewport()
		case key.Matches(msg, m.keys.Cancel):
			m.state = m.previousState
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Tab):
		if m.state == StateTimeline {
			m.state = StateClock
		} else {
			m.state = StateTimeline
		}
		m.viewport.GotoTop()
		m.refreshViewport()
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	case key.Matches(msg, m.keys.Add):
		p := gesture.ProposeBlock(m.nowMinute, m.gapAround(m.nowMinute))
		cmd := m.openEventForm(p.StartTime(), p.EndTime())
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		if m.selected != nil {
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
	case key.Matches(msg, m.keys.Complete):
		m.toggleSelectedComplete()
	case m.state == StateClock && key.Matches(msg, m.keys.PrevPage):
		m.pageWindow(int(rotation.Backward))
	case m.state == StateClock && key.Matches(msg, m.keys.NextPage):
		m.pageWindow(int(rotation.Forward))
	case m.state == StateClock && key.Matches(msg, m.keys.Window):
		m.toggleFullDay()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	switch m.state {
	case StateTimeline:
		return m.timelineMouse(msg)
	case StateClock:
		return m.clockMouse(msg)
	}
	return m, nil
}

// timelinePixel converts a screen row to a timeline content offset, sampling
// the middle of the line.
func (m Model) timelinePixel(screenY int) (float64, bool) {
	line := screenY - headerLines
	if line < 0 || line >= m.viewport.Height {
		return 0, false
	}
	return lineCenter(line + m.viewport.YOffset), true
}

func lineCenter(line int) float64 {
	return (float64(line) + 0.5) * cellPixels
}

func (m Model) timelineMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y, ok := m.timelinePixel(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok {
			return m, nil
		}
		sel := gesture.Begin(m.layout, y)
		m.selection = &sel
		m.pressY = y
		m.refreshViewport()

	case tea.MouseActionMotion:
		if m.selection == nil || !ok {
			return m, nil
		}
		sel := gesture.Update(*m.selection, m.layout, y)
		m.selection = &sel
		m.refreshViewport()

	case tea.MouseActionRelease:
		if m.selection == nil {
			return m, nil
		}
		sel := *m.selection
		m.selection = nil
		m.refreshViewport()

		if !ok || math.Abs(y-m.pressY) < cellPixels {
			if !ok {
				y = m.pressY
			}
			return m.applyTap(gesture.Tap(m.layout, y))
		}
		p := gesture.End(sel)
		logger.Debug("free region selected", "start", p.StartTime(), "end", p.EndTime())
		cmd := m.openEventForm(p.StartTime(), p.EndTime())
		return m, cmd
	}
	return m, nil
}

func (m Model) applyTap(t gesture.TapResult) (tea.Model, tea.Cmd) {
	switch t.Kind {
	case gesture.TapGap:
		logger.Debug("gap tapped", "minute", t.Minute, "start", t.Proposal.StartTime(), "end", t.Proposal.EndTime())
		cmd := m.openEventForm(t.Proposal.StartTime(), t.Proposal.EndTime())
		return m, cmd
	case gesture.TapEvent:
		logger.Debug("event tapped", "id", t.Event.ID)
		m.selected = m.findEvent(t.Event.ID)
		m.refreshViewport()
	}
	return m, nil
}

// clockGeometry returns the face centre and radius in face units, where one
// unit is a terminal row and two columns. The semicircle hangs from the top.
func (m Model) clockGeometry() (cx, cy, radius float64) {
	cols := float64(m.viewport.Width)
	rows := float64(m.viewport.Height)
	cx = cols / 2
	if m.projector.Semicircle {
		cy = 0.5
		radius = math.Min(rows-1, cols/4-1)
	} else {
		cy = rows / 2
		radius = math.Min(rows/2-1, cols/4-1)
	}
	return cx, cy, math.Max(radius, 1)
}

// clockPoint converts a viewport cell to face coordinates relative to the
// centre, y growing downward.
func (m Model) clockPoint(col, row int) (x, y float64) {
	cx, cy, _ := m.clockGeometry()
	return (float64(col) + 0.5 - cx) / 2, float64(row) + 0.5 - cy
}

func (m Model) clockMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.drag = &dragState{startX: msg.X}
		if m.projector.Semicircle {
			m.rotation.Start()
		}

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		dx := msg.X - m.drag.startX
		if dx != 0 {
			m.drag.moved = true
		}
		if m.projector.Semicircle {
			m.rotation.Move(float64(dx) * cellWidthPixels)
			m.refreshViewport()
		}

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		moved := m.drag.moved
		m.drag = nil

		if moved && m.projector.Semicircle {
			dir := m.rotation.End()
			if dir != rotation.NoPage {
				m.pageWindow(int(dir))
			}
			m.refreshViewport()
			return m, nil
		}
		if m.projector.Semicircle {
			m.rotation.Cancel()
		}

		x, y := m.clockPoint(msg.X-1, msg.Y-headerLines+m.viewport.YOffset)
		return m.applyHit(m.projector.HitTest(m.slices, x, y))
	}
	return m, nil
}

func (m Model) applyHit(h polar.Hit) (tea.Model, tea.Cmd) {
	var eventID, start, end string
	polar.Dispatch(h, polar.Callbacks{
		OnEventTap:      func(id string) { eventID = id },
		OnFreeRegionTap: func(s, e string) { start, end = s, e },
	})
	logger.Debug("clock tapped", "angle", h.ContentAngle, "minute", h.Minute, "event", eventID != "")

	switch {
	case eventID != "":
		m.selected = m.findEvent(eventID)
		m.refreshViewport()
	case start != "":
		cmd := m.openEventForm(start, end)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		m.refreshViewport()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveEventForm(); err != nil {
			m.formError = err.Error()
			m.status = fmt.Sprintf("could not add event: %v", err)
		} else {
			m.formError = ""
			m.status = fmt.Sprintf("added %q", m.eventForm.Title)
		}
		m.state = m.previousState
		m.form = nil
		m.reload()
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		m.refreshViewport()
		return m, nil
	}
	return m, cmd
}

func (m *Model) deleteSelected() {
	if m.selected == nil {
		return
	}
	if err := m.store.DeleteEvent(m.selected.ID); err != nil {
		m.status = fmt.Sprintf("delete failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("deleted %q", m.selected.Title)
	m.selected = nil
	m.reload()
}

func (m *Model) toggleSelectedComplete() {
	if m.selected == nil {
		return
	}
	ev := *m.selected
	ev.Completed = !ev.Completed
	if err := m.store.UpdateEvent(ev); err != nil {
		m.status = fmt.Sprintf("update failed: %v", err)
		return
	}
	m.reload()
}
