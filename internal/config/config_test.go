package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", cfg.Integrator)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.TimeAcc <= 0 {
		t.Error("time_acc should be positive")
	}
	if cfg.Output.Field == "" {
		t.Error("output field should have a default")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "snapshot: solar.yaml\ndt: 0.5\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Snapshot != "solar.yaml" {
		t.Errorf("snapshot = %q", cfg.Snapshot)
	}
	if cfg.Dt != 0.5 {
		t.Errorf("dt = %f, want 0.5", cfg.Dt)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Duration != DefaultDuration || cfg.Integrator != "rk4" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Config{
		Snapshot:   "solar.yaml",
		Integrator: "euler",
		Dt:         0.25,
		Duration:   120,
		TimeAcc:    10,
		Output:     OutputConfig{Field: "vy", Entity: "Habitat"},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, want)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("burn")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Dt != 0.1 {
		t.Errorf("expected dt 0.1, got %f", cfg.Dt)
	}

	// Mutating the returned preset must not poison the table.
	cfg.Dt = 99
	if Presets["burn"].Dt != 0.1 {
		t.Error("GetPreset returned the shared instance")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("ListPresets returned %d names, want %d", len(presets), len(Presets))
	}
}
