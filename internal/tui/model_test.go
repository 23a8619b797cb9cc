package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/internal/storage"
)

const testDate = "2026-03-01"

func newTestModel(t *testing.T, events ...models.Event) Model {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "events.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	for _, ev := range events {
		ev.Date = testDate
		if err := store.AddEvent(ev); err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
	}

	m := NewModel(store, Options{Date: testDate, Timezone: "UTC"})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 100})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return out
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

var morningEvent = models.Event{ID: "standup", Title: "Standup", StartTime: "09:00", EndTime: "10:00"}

func TestNewModel_LaysOutDay(t *testing.T) {
	m := newTestModel(t, morningEvent)
	if len(m.items) != 3 {
		t.Fatalf("items = %d, want gap/event/gap", len(m.items))
	}
	if m.layout.ContentHeight() <= 0 {
		t.Error("empty layout")
	}
}

func TestTimelineTap_GapOpensPrefilledForm(t *testing.T) {
	m := newTestModel(t, morningEvent)

	// Line 0 samples y=8, minute 5, inside the first gap.
	m = send(t, m, press(5, headerLines))
	m = send(t, m, release(5, headerLines))

	if m.state != StateForm {
		t.Fatalf("state = %v, want StateForm", m.state)
	}
	if m.eventForm.Start != "00:00" || m.eventForm.End != "01:00" {
		t.Errorf("form = %s-%s, want 00:00-01:00", m.eventForm.Start, m.eventForm.End)
	}
	if m.previousState != StateTimeline {
		t.Errorf("previousState = %v, want StateTimeline", m.previousState)
	}
}

func TestTimelineTap_EventSelects(t *testing.T) {
	m := newTestModel(t, morningEvent)

	// The event row starts at 818px; line 51 samples y=824.
	m = send(t, m, press(5, headerLines+51))
	m = send(t, m, release(5, headerLines+51))

	if m.state != StateTimeline {
		t.Fatalf("state = %v, want StateTimeline", m.state)
	}
	if m.selected == nil || m.selected.ID != "standup" {
		t.Errorf("selected = %+v, want standup", m.selected)
	}
}

func TestTimelineDrag_ProposesSelection(t *testing.T) {
	m := newTestModel(t, morningEvent)

	m = send(t, m, press(5, headerLines))
	m = send(t, m, motion(5, headerLines+10))
	if m.selection == nil {
		t.Fatal("selection not started")
	}
	m = send(t, m, release(5, headerLines+10))

	if m.selection != nil {
		t.Error("selection not cleared on release")
	}
	if m.state != StateForm {
		t.Fatalf("state = %v, want StateForm", m.state)
	}
	// y=8 -> minute 5, y=168 -> minute 112.
	if m.eventForm.Start != "00:05" || m.eventForm.End != "01:52" {
		t.Errorf("form = %s-%s, want 00:05-01:52", m.eventForm.Start, m.eventForm.End)
	}
}

func TestFormEscapeReturnsToPreviousView(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(5, headerLines))
	m = send(t, m, release(5, headerLines))
	if m.state != StateForm {
		t.Fatalf("state = %v, want StateForm", m.state)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateTimeline || m.form != nil {
		t.Errorf("state = %v, form = %v; want timeline and no form", m.state, m.form)
	}
}

func clockModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, morningEvent)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateClock {
		t.Fatalf("state = %v, want StateClock", m.state)
	}
	m.fullDay = false
	m.toggleFullDay()
	return m
}

func TestClockTap_FreeRegion(t *testing.T) {
	m := clockModel(t)

	// The face is 78 columns wide, centred on column 39. Column 39, row 37
	// sits just right of straight up: minute 5.
	m = send(t, m, press(40, headerLines+37))
	m = send(t, m, release(40, headerLines+37))

	if m.state != StateForm {
		t.Fatalf("state = %v, want StateForm", m.state)
	}
	if m.eventForm.Start != "00:00" || m.eventForm.End != "01:00" {
		t.Errorf("form = %s-%s, want 00:00-01:00", m.eventForm.Start, m.eventForm.End)
	}
}

func TestClockTap_Event(t *testing.T) {
	m := clockModel(t)

	// Column 48, row 54 lies at about 54 degrees, inside 09:00-10:00.
	m = send(t, m, press(49, headerLines+54))
	m = send(t, m, release(49, headerLines+54))

	if m.selected == nil || m.selected.ID != "standup" {
		t.Errorf("selected = %+v, want standup", m.selected)
	}
}

func TestClockDrag_PagesSemicircleWindow(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.setWindow(models.Interval{Start: 360, End: 720})
	if !m.projector.Semicircle {
		t.Fatal("six hour window should use the semicircle")
	}

	m = send(t, m, press(10, headerLines+5))
	m = send(t, m, motion(40, headerLines+5))
	if got := m.rotation.Offset(); got != 120 {
		t.Errorf("offset during drag = %v, want 120", got)
	}
	m = send(t, m, release(40, headerLines+5))

	want := models.Interval{Start: 0, End: 360}
	if m.projector.Window != want {
		t.Errorf("window = %v, want %v", m.projector.Window, want)
	}
	if m.rotation.Offset() != 0 {
		t.Errorf("offset after page = %v, want 0", m.rotation.Offset())
	}
}

func TestKeys_PageAndToggleWindow(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.setWindow(models.Interval{Start: 360, End: 720})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.projector.Window != (models.Interval{Start: 720, End: 1080}) {
		t.Errorf("after right: window = %v", m.projector.Window)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	if !m.fullDay || m.projector.Window != (models.Interval{Start: 0, End: 1440}) {
		t.Errorf("after w: fullDay = %v, window = %v", m.fullDay, m.projector.Window)
	}
}

func TestDeleteSelectedEvent(t *testing.T) {
	m := newTestModel(t, morningEvent)
	m = send(t, m, press(5, headerLines+51))
	m = send(t, m, release(5, headerLines+51))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %v, want StateConfirmDelete", m.state)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	if m.state != StateTimeline {
		t.Errorf("state = %v, want StateTimeline", m.state)
	}
	if len(m.events) != 0 || m.selected != nil {
		t.Errorf("event not deleted: events=%d selected=%v", len(m.events), m.selected)
	}
}

func TestView_RendersBothStates(t *testing.T) {
	m := newTestModel(t, morningEvent)
	if m.View() == "" {
		t.Error("empty timeline view")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.View() == "" {
		t.Error("empty clock view")
	}
}
