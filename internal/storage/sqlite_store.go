package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/migration"
	"github.com/julianstephens/dayface/internal/models"
	"github.com/julianstephens/dayface/migrations"
)

const eventColumns = `id, date, title, start_time, end_time, color, icon, notes, completed, created_at, deleted_at`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	pending, err := runner.Pending()
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		// Older database from a previous release; bring it forward.
		if _, err := runner.Apply(func(msg string) { logger.Info(msg) }); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, sub), nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var ev models.Event
	var deletedAt sql.NullString
	err := row.Scan(
		&ev.ID, &ev.Date, &ev.Title, &ev.StartTime, &ev.EndTime, &ev.Color, &ev.Icon,
		&ev.Notes, &ev.Completed, &ev.CreatedAt, &deletedAt,
	)
	if err != nil {
		return models.Event{}, err
	}
	if deletedAt.Valid {
		ev.DeletedAt = &deletedAt.String
	}
	return ev, nil
}

func (s *SQLiteStore) AddEvent(ev models.Event) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	if ev.CreatedAt == "" {
		ev.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
		ev.ID, ev.Date, ev.Title, ev.StartTime, ev.EndTime, ev.Color, ev.Icon,
		ev.Notes, ev.Completed, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event %s: %w", ev.ID, err)
	}
	logger.Debug("event added", "id", ev.ID, "date", ev.Date, "start", ev.StartTime, "end", ev.EndTime)
	return nil
}

func (s *SQLiteStore) GetEvent(id string) (models.Event, error) {
	if s.db == nil {
		return models.Event{}, ErrNotInitialized
	}
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ? AND deleted_at IS NULL`, id)
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ev, err
}

func (s *SQLiteStore) GetEventsForDate(date string) ([]models.Event, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		WHERE date = ? AND deleted_at IS NULL
		ORDER BY start_time, end_time, id`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %s: %w", date, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(ev models.Event) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	res, err := s.db.Exec(`
		UPDATE events
		SET date = ?, title = ?, start_time = ?, end_time = ?, color = ?, icon = ?, notes = ?, completed = ?
		WHERE id = ? AND deleted_at IS NULL`,
		ev.Date, ev.Title, ev.StartTime, ev.EndTime, ev.Color, ev.Icon, ev.Notes, ev.Completed, ev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", ev.ID, err)
	}
	return requireOne(res, ev.ID)
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`UPDATE events SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return requireOne(res, id)
}

func (s *SQLiteStore) RestoreEvent(id string) error {
	if s.db == nil {
		return ErrNotInitialized
	}
	res, err := s.db.Exec(`UPDATE events SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to restore event %s: %w", id, err)
	}
	return requireOne(res, id)
}

func requireOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
