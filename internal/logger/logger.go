// Package logger holds the process-wide structured logger. Output goes to a
// size-rotated file under the config directory; the TUI owns the terminal, so
// stderr only sees log lines in debug mode.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDirName  = "logs"
	logFileName = "dayface.log"

	defaultMaxSizeMB = 10
	keptFiles        = 3
	keptDays         = 28
)

// Logger is nil until Init or InitWriter runs; the helpers below are no-ops
// until then.
var Logger *log.Logger

// Config selects where logs go and how much is written.
type Config struct {
	Debug     bool
	ConfigDir string
	// Level is "debug", "info", "warn" or "error". Empty means debug when
	// Debug is set and warn otherwise; unparseable values fall back the same way.
	Level string
	// MaxSizeMB rotates the log file at this size. Zero or less means 10.
	MaxSizeMB int
}

func (c Config) level() log.Level {
	if c.Level != "" {
		if lvl, err := log.ParseLevel(c.Level); err == nil {
			return lvl
		}
	}
	if c.Debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

func (c Config) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return defaultMaxSizeMB
	}
	return c.MaxSizeMB
}

// Path returns the active log file for a config directory.
func Path(configDir string) string {
	return filepath.Join(configDir, logDirName, logFileName)
}

// Init points the logger at the rotated log file for cfg.ConfigDir.
func Init(cfg Config) error {
	path := Path(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.maxSizeMB(),
		MaxBackups: keptFiles,
		MaxAge:     keptDays,
		Compress:   true,
	}
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, w)
	}

	InitWriter(w, cfg)
	return nil
}

// InitWriter points the logger at w.
func InitWriter(w io.Writer, cfg Config) {
	Logger = log.NewWithOptions(w, log.Options{
		Prefix:          "dayface",
		Level:           cfg.level(),
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
}

func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Helper()
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{})  { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{})  { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }

// Fatal logs at error level and exits with status 1.
func Fatal(msg string, keyvals ...interface{}) {
	logAt(log.ErrorLevel, msg, keyvals)
	os.Exit(1)
}
