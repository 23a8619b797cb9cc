package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/dayface/internal/models"
)

func newProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"sqlite": New(filepath.Join(dir, "dayface.db")),
		"json":   New(filepath.Join(dir, "dayface.json")),
	}
}

func initProvider(t *testing.T, p Provider) {
	t.Helper()
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { p.Close() })
}

func TestNew_SelectsBackend(t *testing.T) {
	if _, ok := New("/tmp/x.json").(*JSONStore); !ok {
		t.Error("expected JSONStore for .json path")
	}
	if _, ok := New("/tmp/x.db").(*SQLiteStore); !ok {
		t.Error("expected SQLiteStore for .db path")
	}
}

func TestLoad_BeforeInit(t *testing.T) {
	for name, p := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Load(); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("Load() = %v, want ErrNotInitialized", err)
			}
		})
	}
}

func TestEventsForDate(t *testing.T) {
	for name, p := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			initProvider(t, p)

			events := []models.Event{
				{ID: "c", Date: "2026-03-01", Title: "Lunch", StartTime: "12:00", EndTime: "13:00"},
				{ID: "a", Date: "2026-03-01", Title: "Standup", StartTime: "09:00", EndTime: "09:15"},
				{ID: "b", Date: "2026-03-02", Title: "Other day", StartTime: "08:00", EndTime: "09:00"},
				{ID: "d", Date: "2026-03-01", Title: "Late", StartTime: "23:00", EndTime: "00:00", Color: "#112233"},
			}
			for _, ev := range events {
				if err := p.AddEvent(ev); err != nil {
					t.Fatalf("AddEvent(%s) error = %v", ev.ID, err)
				}
			}

			got, err := p.GetEventsForDate("2026-03-01")
			if err != nil {
				t.Fatalf("GetEventsForDate() error = %v", err)
			}
			wantIDs := []string{"a", "c", "d"}
			if len(got) != len(wantIDs) {
				t.Fatalf("got %d events, want %d", len(got), len(wantIDs))
			}
			for i, id := range wantIDs {
				if got[i].ID != id {
					t.Errorf("event[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
			if got[2].Color != "#112233" || got[2].EndTime != "00:00" {
				t.Errorf("fields not round-tripped: %+v", got[2])
			}
			if got[0].CreatedAt == "" {
				t.Error("CreatedAt not populated")
			}
		})
	}
}

func TestUpdateDeleteRestore(t *testing.T) {
	for name, p := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			initProvider(t, p)

			ev := models.Event{ID: "e1", Date: "2026-03-01", Title: "Focus", StartTime: "10:00", EndTime: "11:00"}
			if err := p.AddEvent(ev); err != nil {
				t.Fatal(err)
			}

			ev.Title = "Deep work"
			ev.Completed = true
			if err := p.UpdateEvent(ev); err != nil {
				t.Fatalf("UpdateEvent() error = %v", err)
			}
			got, err := p.GetEvent("e1")
			if err != nil {
				t.Fatalf("GetEvent() error = %v", err)
			}
			if got.Title != "Deep work" || !got.Completed {
				t.Errorf("update not persisted: %+v", got)
			}

			if err := p.DeleteEvent("e1"); err != nil {
				t.Fatalf("DeleteEvent() error = %v", err)
			}
			if _, err := p.GetEvent("e1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetEvent after delete = %v, want ErrNotFound", err)
			}
			if evs, _ := p.GetEventsForDate("2026-03-01"); len(evs) != 0 {
				t.Errorf("deleted event still listed: %+v", evs)
			}
			if err := p.DeleteEvent("e1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("second DeleteEvent = %v, want ErrNotFound", err)
			}
			if err := p.UpdateEvent(ev); !errors.Is(err, ErrNotFound) {
				t.Errorf("UpdateEvent on deleted = %v, want ErrNotFound", err)
			}

			if err := p.RestoreEvent("e1"); err != nil {
				t.Fatalf("RestoreEvent() error = %v", err)
			}
			if _, err := p.GetEvent("e1"); err != nil {
				t.Errorf("GetEvent after restore = %v", err)
			}
			if err := p.RestoreEvent("e1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("RestoreEvent on live event = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestReopenPersists(t *testing.T) {
	for name, p := range newProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatal(err)
			}
			ev := models.Event{ID: "keep", Date: "2026-03-01", Title: "Walk", StartTime: "18:00", EndTime: "18:30"}
			if err := p.AddEvent(ev); err != nil {
				t.Fatal(err)
			}
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}

			reopened := New(p.GetConfigPath())
			if err := reopened.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer reopened.Close()
			if _, err := reopened.GetEvent("keep"); err != nil {
				t.Errorf("GetEvent after reopen = %v", err)
			}
		})
	}
}

func TestSQLiteInit_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayface.db")
	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	defer second.Close()
	if err := second.Init(); err != nil {
		t.Errorf("second Init() error = %v", err)
	}
}
