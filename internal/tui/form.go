package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
	"github.com/julianstephens/dayface/internal/validation"
)

type EventFormModel struct {
	Title string
	Start string
	End   string
	Color string
}

var colorOptions = []huh.Option[string]{
	huh.NewOption("Blue", constants.DefaultEventColor),
	huh.NewOption("Green", "#5cb85c"),
	huh.NewOption("Orange", "#f0ad4e"),
	huh.NewOption("Red", "#d9534f"),
	huh.NewOption("Purple", "#8e6cc4"),
}

func validateStart(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return errors.New("use HH:MM")
	}
	return nil
}

func validateEnd(s string) error {
	if _, err := utils.ParseEndTimeToMinutes(s); err != nil {
		return errors.New("use HH:MM")
	}
	return nil
}

// openEventForm switches to the create-event form prefilled with a proposal.
func (m *Model) openEventForm(start, end string) tea.Cmd {
	m.eventForm = &EventFormModel{Start: start, End: end, Color: constants.DefaultEventColor}
	m.formError = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.eventForm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start").
				Value(&m.eventForm.Start).
				Validate(validateStart),
			huh.NewInput().
				Title("End").
				Value(&m.eventForm.End).
				Validate(validateEnd),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&m.eventForm.Color),
		),
	).WithShowHelp(true)

	if m.state != StateForm {
		m.previousState = m.state
	}
	m.state = StateForm
	return m.form.Init()
}

// saveEventForm stores the submitted form as a new event for the session date.
func (m *Model) saveEventForm() error {
	f := m.eventForm
	ev := models.Event{
		ID:        uuid.New().String(),
		Date:      m.opts.Date,
		Title:     strings.TrimSpace(f.Title),
		StartTime: f.Start,
		EndTime:   f.End,
		Color:     f.Color,
	}
	if _, err := validation.EventInterval(ev); err != nil {
		return err
	}
	return m.store.AddEvent(ev)
}

// gapAround returns the free interval holding minute, or the whole day when
// minute is inside an event.
func (m Model) gapAround(minute int) models.Interval {
	for _, it := range m.items {
		if gap, ok := it.(timeline.GapItem); ok && gap.Interval.Contains(minute) {
			return gap.Interval
		}
	}
	return timeline.FullDay
}
