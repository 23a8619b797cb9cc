// Package storage persists the events the clock face is drawn from.
package storage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/julianstephens/dayface/internal/models"
)

var (
	// ErrNotFound is returned when no live event has the requested ID.
	ErrNotFound = errors.New("event not found")

	// ErrNotInitialized is returned by Load before init has been run.
	ErrNotInitialized = errors.New("storage not initialized, run 'dayface init' first")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Events
	AddEvent(models.Event) error
	GetEvent(id string) (models.Event, error)
	// GetEventsForDate returns the live events for a YYYY-MM-DD date ordered
	// by start time.
	GetEventsForDate(date string) ([]models.Event, error)
	UpdateEvent(models.Event) error
	DeleteEvent(id string) error
	RestoreEvent(id string) error

	// Utils
	GetConfigPath() string
}

// New returns the provider for path: a JSON file store for ".json" paths and
// the SQLite store otherwise.
func New(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
