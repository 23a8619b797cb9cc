package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dayface/internal/backup"
	"github.com/julianstephens/dayface/internal/logger"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		return err
	}
	ctx.printf("Created backup %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	snapshots, err := m.List()
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		ctx.printf("No backups in %s\n", m.Dir())
		return nil
	}
	ctx.printf("%s\n", headerStyle.Render("Backups in "+m.Dir()))
	for _, s := range snapshots {
		ctx.printf("  %s  %s  %s\n",
			s.Timestamp.Format("2006-01-02 15:04:05"),
			dimStyle.Render(fmt.Sprintf("%8s", humanize.Bytes(uint64(s.Size)))),
			filepath.Base(s.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Backup file, or a name from 'backup list'."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	path := c.File
	if filepath.Base(path) == path {
		path = filepath.Join(m.Dir(), path)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}
	previous, err := m.Restore(path)
	if err != nil {
		return err
	}
	if previous != "" {
		ctx.printf("Saved current store as %s\n", filepath.Base(previous))
	}
	ctx.printf("Restored %s\n", filepath.Base(path))
	return ctx.Store.Load()
}

// snapshotBeforeImport takes a best-effort snapshot ahead of a bulk change.
func snapshotBeforeImport(ctx *Context) {
	path, err := backup.NewManager(ctx.Store.GetConfigPath()).Create()
	if err != nil {
		logger.Warn("pre-import backup failed", "error", err)
		return
	}
	logger.Debug("pre-import backup", "path", path)
}
