package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Dir(Path(configDir))
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Error("Logger is nil after initialization")
	}

	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitWriter_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, Config{Level: "info"})

	Debug("hidden message")
	Info("layout pass", "items", 4)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, "layout pass") || !strings.Contains(out, "items=4") {
		t.Errorf("info message missing from output: %q", out)
	}
}

func TestInitWriter_DefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, Config{})

	Info("quiet")
	Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Errorf("unexpected output at warn level: %q", out)
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestConfigLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want log.Level
	}{
		{"default", Config{}, log.WarnLevel},
		{"debug flag", Config{Debug: true}, log.DebugLevel},
		{"explicit level wins", Config{Debug: true, Level: "error"}, log.ErrorLevel},
		{"bad level falls back", Config{Level: "loud"}, log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.level(); got != tt.want {
				t.Errorf("level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigMaxSize(t *testing.T) {
	if got := (Config{}).maxSizeMB(); got != 10 {
		t.Errorf("maxSizeMB() = %d, want 10", got)
	}
	if got := (Config{MaxSizeMB: 2}).maxSizeMB(); got != 2 {
		t.Errorf("maxSizeMB() = %d, want 2", got)
	}
}

func TestInit_WritesLogFile(t *testing.T) {
	configDir := t.TempDir()
	if err := Init(Config{ConfigDir: configDir, Level: "info"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Info("store opened", "path", "dayface.db")

	data, err := os.ReadFile(Path(configDir))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "store opened") {
		t.Errorf("log file missing message: %q", data)
	}
}
