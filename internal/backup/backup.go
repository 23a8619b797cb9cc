// Package backup keeps rotating snapshots of the event store next to the
// store file. SQLite stores are snapshotted with VACUUM INTO; JSON stores
// are copied byte for byte.
package backup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/dayface/internal/logger"
)

const (
	// DefaultRetention is how many snapshots Create keeps.
	DefaultRetention = 14
	// DirName is the snapshot directory, created beside the store file.
	DirName = "backups"
	// FilePrefix starts every snapshot file name.
	FilePrefix = "dayface-"

	stampLayout = "20060102-150405"
)

// ErrNoStore is returned when the store file has not been created yet.
var ErrNoStore = errors.New("store file does not exist")

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists and restores snapshots of a single store file.
type Manager struct {
	storePath string
	dir       string
	ext       string
	retention int
	now       func() time.Time
}

// NewManager returns a manager for the store at storePath. The snapshot
// extension follows the store: ".json" stores get ".json" snapshots,
// everything else is treated as SQLite.
func NewManager(storePath string) *Manager {
	ext := ".db"
	if strings.EqualFold(filepath.Ext(storePath), ".json") {
		ext = ".json"
	}
	return &Manager{
		storePath: storePath,
		dir:       filepath.Join(filepath.Dir(storePath), DirName),
		ext:       ext,
		retention: DefaultRetention,
		now:       time.Now,
	}
}

// WithRetention sets how many snapshots survive rotation. n < 1 keeps one.
func (m *Manager) WithRetention(n int) *Manager {
	if n < 1 {
		n = 1
	}
	m.retention = n
	return m
}

// Dir returns the snapshot directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Create snapshots the store and prunes snapshots beyond the retention limit.
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("failed to rotate snapshots", "dir", m.dir, "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNoStore, m.storePath)
	}
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}

	if m.ext == ".json" {
		err = copyFile(m.storePath, path)
	} else {
		err = vacuumInto(m.storePath, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to snapshot %s: %w", m.storePath, err)
	}

	logger.Debug("snapshot created", "path", path)
	return path, nil
}

// nextPath picks an unused snapshot name. Snapshots taken within the same
// second get a numeric suffix.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(stampLayout)
	path := filepath.Join(m.dir, FilePrefix+stamp+m.ext)
	for n := 1; exists(path); n++ {
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot name for %s", stamp)
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s%s-%d%s", FilePrefix, stamp, n, m.ext))
	}
	return path, nil
}

// List returns the snapshots for this store, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	snapshots := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots = append(snapshots, Info{
			Path:      filepath.Join(m.dir, entry.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].Timestamp.Equal(snapshots[j].Timestamp) {
			return snapshots[i].Path > snapshots[j].Path
		}
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})
	return snapshots, nil
}

func (m *Manager) parseName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, m.ext) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), m.ext)
	if len(stamp) > len(stampLayout) && stamp[len(stampLayout)] == '-' {
		stamp = stamp[:len(stampLayout)]
	}
	ts, err := time.ParseInLocation(stampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (m *Manager) rotate() error {
	snapshots, err := m.List()
	if err != nil {
		return err
	}
	for i := m.retention; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store with the snapshot at path. The current store,
// if any, is snapshotted first and that path is returned. The store must
// not be open while restoring.
func (m *Manager) Restore(path string) (string, error) {
	if !exists(path) {
		return "", fmt.Errorf("snapshot does not exist: %s", path)
	}
	if err := m.verify(path); err != nil {
		return "", fmt.Errorf("snapshot is corrupted or invalid: %w", err)
	}

	var previous string
	if exists(m.storePath) {
		p, err := m.create()
		if err != nil {
			return "", fmt.Errorf("failed to snapshot current store before restore: %w", err)
		}
		previous = p
	}

	tmp := m.storePath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return "", fmt.Errorf("failed to copy snapshot: %w", err)
	}
	if err := os.Rename(tmp, m.storePath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to restore store: %w", err)
	}

	logger.Info("store restored", "from", path, "previous", previous)
	return previous, nil
}

func (m *Manager) verify(path string) error {
	if m.ext == ".json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			return errors.New("not a JSON document")
		}
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
