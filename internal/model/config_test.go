package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(defaultAppConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.TagColor() != ColorBlue {
		t.Errorf("TagColor() = %s, want BLUE", cfg.TagColor())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `backup:
  path: /tmp/todos.bak
store:
  enabled: true
display:
  default_color: green
  plain: true
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Backup.Path != "/tmp/todos.bak" {
		t.Errorf("Backup.Path = %q", cfg.Backup.Path)
	}
	if !cfg.Store.Enabled || cfg.Store.Path != defaultAppConfig().Store.Path {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if !cfg.Display.Plain || cfg.TagColor() != ColorGreen {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TODOKEEPER_BACKUP_PATH", "/env/todos.bak")
	t.Setenv("TODOKEEPER_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Backup.Path != "/env/todos.bak" {
		t.Errorf("Backup.Path = %q, want env override", cfg.Backup.Path)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want env override", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsUnknownColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  default_color: teal\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidArgument", err)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := defaultAppConfig()
	want.Backup.Path = "/data/todos.bak"
	want.Store.Enabled = true
	want.Display.DefaultColor = string(ColorOrange)
	want.Log.Format = "json"

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
