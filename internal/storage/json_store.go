package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/dayface/internal/models"
)

type jsonDocument struct {
	Version int                     `json:"version"`
	Events  map[string]models.Event `json:"events"`
}

// JSONStore keeps every event in one JSON file, rewritten on each change.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &jsonDocument{Version: 1, Events: make(map[string]models.Event)}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &jsonDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Events == nil {
		doc.Events = make(map[string]models.Event)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) AddEvent(ev models.Event) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	if _, ok := s.doc.Events[ev.ID]; ok {
		return fmt.Errorf("event already exists: %s", ev.ID)
	}
	if ev.CreatedAt == "" {
		ev.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	ev.DeletedAt = nil
	s.doc.Events[ev.ID] = ev
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.Event, error) {
	if s.doc == nil {
		return models.Event{}, ErrNotInitialized
	}
	ev, ok := s.doc.Events[id]
	if !ok || ev.IsDeleted() {
		return models.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ev, nil
}

func (s *JSONStore) GetEventsForDate(date string) ([]models.Event, error) {
	if s.doc == nil {
		return nil, ErrNotInitialized
	}
	var events []models.Event
	for _, ev := range s.doc.Events {
		if ev.Date == date && !ev.IsDeleted() {
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.EndTime != b.EndTime {
			return a.EndTime < b.EndTime
		}
		return a.ID < b.ID
	})
	return events, nil
}

func (s *JSONStore) UpdateEvent(ev models.Event) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	existing, ok := s.doc.Events[ev.ID]
	if !ok || existing.IsDeleted() {
		return fmt.Errorf("%w: %s", ErrNotFound, ev.ID)
	}
	ev.CreatedAt = existing.CreatedAt
	ev.DeletedAt = nil
	s.doc.Events[ev.ID] = ev
	return s.save()
}

func (s *JSONStore) DeleteEvent(id string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	ev, ok := s.doc.Events[id]
	if !ok || ev.IsDeleted() {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	ev.DeletedAt = &now
	s.doc.Events[id] = ev
	return s.save()
}

func (s *JSONStore) RestoreEvent(id string) error {
	if s.doc == nil {
		return ErrNotInitialized
	}
	ev, ok := s.doc.Events[id]
	if !ok || !ev.IsDeleted() {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	ev.DeletedAt = nil
	s.doc.Events[id] = ev
	return s.save()
}
