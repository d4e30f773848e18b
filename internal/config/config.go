// ABOUTME: IronLog configuration management: data locations and policy constants.
// ABOUTME: JSON config under XDG paths with factory helpers for the stores.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/snapshot"
	"github.com/harperreed/ironlog/internal/storage"
)

// Config stores ironlog configuration. Zero values fall back to defaults,
// so an absent config file works out of the box.
type Config struct {
	// OwnerID identifies the local user in stored records.
	OwnerID string `json:"owner_id,omitempty"`

	// DataDir is the root directory for the SQLite store and session
	// snapshots. Supports ~ expansion. Defaults to ~/.local/share/ironlog.
	DataDir string `json:"data_dir,omitempty"`

	// WeekStart names the weekday weekly stats buckets begin on
	// ("monday", "sunday", ...). Defaults to monday.
	WeekStart string `json:"week_start,omitempty"`

	// PlateauThreshold is the coefficient-of-variation cutoff for plateau
	// detection. Defaults to 0.05.
	PlateauThreshold float64 `json:"plateau_threshold,omitempty"`

	// PlateauWindow is the number of recent weeks the plateau test uses.
	// Defaults to 4.
	PlateauWindow int `json:"plateau_window,omitempty"`

	// AutosaveSeconds is the session autosave interval. Defaults to 30.
	AutosaveSeconds int `json:"autosave_seconds,omitempty"`
}

// GetOwnerID returns the configured owner, defaulting to "local".
func (c *Config) GetOwnerID() string {
	if c.OwnerID == "" {
		return "local"
	}
	return c.OwnerID
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// AutosaveInterval returns the session autosave period.
func (c *Config) AutosaveInterval() time.Duration {
	if c.AutosaveSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.AutosaveSeconds) * time.Second
}

// Analytics translates the config into the analytics policy constants.
func (c *Config) Analytics() analytics.Config {
	cfg := analytics.DefaultConfig()
	if wd, ok := parseWeekday(c.WeekStart); ok {
		cfg.WeekStart = wd
	}
	if c.PlateauThreshold > 0 {
		cfg.PlateauThreshold = c.PlateauThreshold
	}
	if c.PlateauWindow > 0 {
		cfg.PlateauWindow = c.PlateauWindow
	}
	return cfg
}

// OpenStorage opens the SQLite record store under the data dir.
func (c *Config) OpenStorage() (*storage.DB, error) {
	dbPath := filepath.Join(c.GetDataDir(), "ironlog.db")
	return storage.Open(dbPath)
}

// OpenSnapshots opens the session snapshot store under the data dir.
func (c *Config) OpenSnapshots() (*snapshot.Store, error) {
	return snapshot.Open(snapshot.DefaultDir(c.GetDataDir()))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ironlog", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return time.Monday, false
}
