// ABOUTME: Tests for config loading, defaults, and policy translation.
// ABOUTME: Uses XDG_CONFIG_HOME redirection so no real config is touched.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GetOwnerID() != "local" {
		t.Errorf("owner = %q, want local", cfg.GetOwnerID())
	}
	if cfg.AutosaveInterval() != 30*time.Second {
		t.Errorf("autosave = %v, want 30s", cfg.AutosaveInterval())
	}

	acfg := cfg.Analytics()
	if acfg.WeekStart != time.Monday {
		t.Errorf("week start = %v, want Monday", acfg.WeekStart)
	}
	if acfg.PlateauWindow != 4 || acfg.PlateauThreshold != 0.05 {
		t.Errorf("plateau policy = %+v", acfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		OwnerID:          "harper",
		WeekStart:        "sunday",
		PlateauThreshold: 0.1,
		PlateauWindow:    6,
		AutosaveSeconds:  10,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.OwnerID != "harper" {
		t.Errorf("owner = %q", got.OwnerID)
	}
	if got.AutosaveInterval() != 10*time.Second {
		t.Errorf("autosave = %v", got.AutosaveInterval())
	}

	acfg := got.Analytics()
	if acfg.WeekStart != time.Sunday {
		t.Errorf("week start = %v, want Sunday", acfg.WeekStart)
	}
	if acfg.PlateauWindow != 6 || acfg.PlateauThreshold != 0.1 {
		t.Errorf("plateau policy = %+v", acfg)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "ironlog", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("malformed config should error")
	}
}

func TestAnalyticsIgnoresBadWeekday(t *testing.T) {
	cfg := &Config{WeekStart: "someday"}
	if got := cfg.Analytics().WeekStart; got != time.Monday {
		t.Errorf("week start = %v, want Monday fallback", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("~/data = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("/abs/path = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty = %q", got)
	}
}

func TestGetDataDirOverride(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/ironlog-test"}
	if got := cfg.GetDataDir(); got != "/tmp/ironlog-test" {
		t.Errorf("data dir = %q", got)
	}
}
