package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Plant != "room" {
		t.Errorf("expected plant room, got %s", cfg.Plant)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("room", "comfort")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Setpoint != 20.0 {
		t.Errorf("expected setpoint 20, got %f", cfg.Setpoint)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("room", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "comfort"); cfg != nil {
		t.Error("expected nil for nonexistent plant")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("room"); len(presets) == 0 {
		t.Error("expected presets for room")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent plant")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Setpoint = 21.5
	cfg.Limits.Output = []float64{0, 1}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Setpoint != 21.5 {
		t.Errorf("expected setpoint 21.5, got %f", loaded.Setpoint)
	}
	if len(loaded.Limits.Output) != 2 {
		t.Errorf("expected output limit to survive, got %v", loaded.Limits.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildPID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.Output = []float64{0, 1}

	ctl, err := cfg.BuildPID()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ctl.Kp != cfg.Gains.Kp {
		t.Errorf("expected kp %f, got %f", cfg.Gains.Kp, ctl.Kp)
	}
	if ctl.ORange == nil || ctl.ORange.Hi != 1 {
		t.Errorf("expected output range [0,1], got %v", ctl.ORange)
	}
	if ctl.PRange != nil {
		t.Error("unset limit should leave the term unclamped")
	}
}

func TestBuildPID_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"swapped range", func(c *Config) { c.Limits.Output = []float64{1, 0} }},
		{"short range", func(c *Config) { c.Limits.I = []float64{1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.BuildPID(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
