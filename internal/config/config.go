package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/rotation"
	"github.com/julianstephens/dayface/internal/timeline"
	"github.com/julianstephens/dayface/internal/utils"
)

// LayoutConfig holds the linear layout metrics, in pixels.
type LayoutConfig struct {
	PixelsPerMinute float64 `yaml:"pixels_per_minute"`
	MinRowHeight    float64 `yaml:"min_row_height"`
	TileHeight      float64 `yaml:"tile_height"`
	TileGap         float64 `yaml:"tile_gap"`
	RowMargin       float64 `yaml:"row_margin"`
}

// RotationConfig holds the semicircle drag constants.
type RotationConfig struct {
	DegPerPixel float64 `yaml:"deg_per_pixel"`
}

// Config is the top-level application configuration.
type Config struct {
	// Database is the path of the SQLite event store, or a .json file for the JSON store.
	Database string `yaml:"database"`

	// Timezone is the IANA timezone used to decide "today" and "now".
	Timezone string `yaml:"timezone"`

	// Sunrise and Sunset feed the astro arc. Empty values fall back to 06:00/18:00.
	Sunrise string `yaml:"sunrise"`
	Sunset  string `yaml:"sunset"`

	// WindowHours is the length of the paged clock window. Six hours uses the semicircle.
	WindowHours int `yaml:"window_hours"`

	Layout   LayoutConfig   `yaml:"layout"`
	Rotation RotationConfig `yaml:"rotation"`

	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database:    constants.DefaultDBPath,
		Timezone:    "Local",
		Sunrise:     constants.DefaultSunrise,
		Sunset:      constants.DefaultSunset,
		WindowHours: constants.DefaultWindowHours,
		Layout: LayoutConfig{
			PixelsPerMinute: constants.PixelsPerMinute,
			MinRowHeight:    constants.MinRowHeight,
			TileHeight:      constants.TileHeight,
			TileGap:         constants.TileGap,
			RowMargin:       constants.RowMargin,
		},
		Rotation: RotationConfig{DegPerPixel: constants.DegPerPixel},
	}
}

// Normalize fills in missing or invalid values with defaults so partially
// written files still produce a usable configuration.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.Timezone == "" || !utils.ValidateTimezone(c.Timezone) {
		c.Timezone = d.Timezone
	}
	if !utils.ValidateTimeFormat(c.Sunrise) {
		c.Sunrise = d.Sunrise
	}
	if !utils.ValidateTimeFormat(c.Sunset) {
		c.Sunset = d.Sunset
	}
	if c.WindowHours <= 0 || c.WindowHours > 24 || 24%c.WindowHours != 0 {
		c.WindowHours = d.WindowHours
	}
	if c.Layout.PixelsPerMinute <= 0 {
		c.Layout.PixelsPerMinute = d.Layout.PixelsPerMinute
	}
	if c.Layout.MinRowHeight <= 0 {
		c.Layout.MinRowHeight = d.Layout.MinRowHeight
	}
	if c.Layout.TileHeight <= 0 {
		c.Layout.TileHeight = d.Layout.TileHeight
	}
	if c.Layout.TileGap < 0 {
		c.Layout.TileGap = d.Layout.TileGap
	}
	if c.Layout.RowMargin < 0 {
		c.Layout.RowMargin = d.Layout.RowMargin
	}
	if c.Rotation.DegPerPixel <= 0 {
		c.Rotation.DegPerPixel = d.Rotation.DegPerPixel
	}
}

// Metrics returns the layout metrics for the timeline.
func (c *Config) Metrics() timeline.Metrics {
	return timeline.Metrics{
		PixelsPerMinute: c.Layout.PixelsPerMinute,
		MinRowHeight:    c.Layout.MinRowHeight,
		TileHeight:      c.Layout.TileHeight,
		TileGap:         c.Layout.TileGap,
		RowMargin:       c.Layout.RowMargin,
	}
}

// RotationSettings returns the rotation constants with the configured drag speed.
func (c *Config) RotationSettings() rotation.Config {
	rc := rotation.DefaultConfig()
	rc.DegPerPixel = c.Rotation.DegPerPixel
	return rc
}

// Load loads configuration from the given YAML path. A missing file is
// created with the defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes the configuration atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".dayface-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Dir returns the directory holding the config file, used for logs.
func Dir(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(expanded)
}
