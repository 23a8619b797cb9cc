package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayface/internal/astro"
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/gesture"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/polar"
	"github.com/julianstephens/dayface/internal/rotation"
	"github.com/julianstephens/dayface/internal/storage"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
	"github.com/julianstephens/dayface/internal/validation"
)

type SessionState int

const (
	StateTimeline SessionState = iota
	StateClock
	StateForm
	StateConfirmDelete
)

const (
	// cellPixels is the timeline height one terminal line stands for.
	cellPixels = 16.0
	// cellWidthPixels is the drag distance one terminal column stands for.
	cellWidthPixels = 8.0

	headerLines = 2
	footerLines = 2
)

// Options carry the per-session settings the host resolved from config.
type Options struct {
	Date        string
	Timezone    string
	Metrics     timeline.Metrics
	Rotation    rotation.Config
	WindowHours int
	Sunrise     string
	Sunset      string
}

type tickMsg time.Time

type dragState struct {
	startX int
	moved  bool
}

type Model struct {
	store         storage.Provider
	opts          Options
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	viewport      viewport.Model

	events    []models.Event
	entries   []timeline.Entry
	items     []timeline.Item
	layout    *timeline.Layout
	projector polar.Projector
	slices    []polar.Slice
	fullDay   bool
	arc       astro.Arc
	nowMinute int
	conflicts []validation.Conflict

	rotation  *rotation.Controller
	drag      *dragState
	selection *gesture.Selection
	pressY    float64

	selected  *models.Event
	form      *huh.Form
	eventForm *EventFormModel
	status    string
	formError string

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, opts Options) Model {
	if opts.Date == "" {
		opts.Date = time.Now().Format(constants.DateFormat)
	}
	if opts.Metrics == (timeline.Metrics{}) {
		opts.Metrics = timeline.DefaultMetrics()
	}
	if opts.Rotation == (rotation.Config{}) {
		opts.Rotation = rotation.DefaultConfig()
	}
	if opts.WindowHours <= 0 {
		opts.WindowHours = constants.DefaultWindowHours
	}

	now, err := utils.NowMinutes(opts.Timezone)
	if err != nil {
		logger.Warn("falling back to local time", "timezone", opts.Timezone, "error", err)
		t := time.Now()
		now = t.Hour()*constants.MinutesPerHour + t.Minute()
	}

	rc := rotation.NewController(nil)
	rc.Config = opts.Rotation

	m := Model{
		store:     store,
		opts:      opts,
		state:     StateTimeline,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		arc:       astro.New(opts.Sunrise, opts.Sunset),
		nowMinute: now,
		rotation:  rc,
	}
	m.projector = polar.New(polar.WindowAt(now, opts.WindowHours))
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Add, m.keys.Quit, m.keys.Help}
	if m.state == StateClock {
		keys = append(keys, m.keys.PrevPage, m.keys.NextPage, m.keys.Window)
	}
	if m.selected != nil {
		keys = append(keys, m.keys.Delete, m.keys.Complete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// reload reads the day's events and recomputes both projections. Events that
// fail interval validation leave the previous projection in place.
func (m *Model) reload() {
	events, err := m.store.GetEventsForDate(m.opts.Date)
	if err != nil {
		logger.Error("failed to load events", "date", m.opts.Date, "error", err)
		m.status = fmt.Sprintf("failed to load events: %v", err)
		return
	}
	entries, err := timeline.NewEntries(events)
	if err != nil {
		logger.Error("refusing layout pass", "date", m.opts.Date, "error", err)
		m.status = err.Error()
		return
	}

	m.events = events
	m.entries = entries
	m.conflicts = validation.New().ValidateEvents(events).Conflicts
	m.relayout()

	if m.selected != nil {
		m.selected = m.findEvent(m.selected.ID)
	}
}

func (m *Model) relayout() {
	m.items = timeline.Merge(m.entries)
	m.layout = timeline.NewLayout(m.items, m.opts.Metrics)
	m.reproject()
	logger.Debug("layout pass", "date", m.opts.Date, "events", len(m.entries), "items", len(m.items), "height", m.layout.ContentHeight())
	m.refreshViewport()
}

func (m *Model) reproject() {
	m.slices = m.projector.Slices(m.entries)
}

func (m *Model) setWindow(w models.Interval) {
	m.projector = polar.New(w)
	m.reproject()
	m.refreshViewport()
}

func (m *Model) pageWindow(dir int) {
	if m.fullDay {
		return
	}
	m.setWindow(polar.PageWindow(m.projector.Window, dir))
	logger.Debug("window paged", "direction", dir, "window", m.projector.Window.String())
}

func (m *Model) toggleFullDay() {
	m.fullDay = !m.fullDay
	if m.fullDay {
		m.setWindow(polar.NewFullDay().Window)
		return
	}
	m.setWindow(polar.WindowAt(m.nowMinute, m.opts.WindowHours))
}

func (m *Model) findEvent(id string) *models.Event {
	for i := range m.events {
		if m.events[i].ID == id {
			ev := m.events[i]
			return &ev
		}
	}
	return nil
}

func (m *Model) refreshViewport() {
	switch m.state {
	case StateTimeline:
		m.viewport.SetContent(m.renderTimeline())
	case StateClock:
		m.viewport.SetContent(m.renderClock())
	}
}
