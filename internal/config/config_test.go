package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "trainer.yaml", `
theme: light
result_dwell_ms: 1500
reaction:
  spawn_delay_min_ms: 200
  spawn_delay_max_ms: 400
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, expected light", cfg.Theme)
	}
	if cfg.ResultDwellMs != 1500 {
		t.Errorf("ResultDwellMs = %d, expected 1500", cfg.ResultDwellMs)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Field.Width != 900 || cfg.FrameRate.Game != 60 {
		t.Errorf("unspecified keys lost defaults: %+v", cfg)
	}
	lo, hi := cfg.Reaction.SpawnDelay()
	if lo != 200*time.Millisecond || hi != 400*time.Millisecond {
		t.Errorf("SpawnDelay() = %v, %v", lo, hi)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "trainer.toml", `
theme = "light"

[frame_rate]
game = 120
menu = 15
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FrameRate.Game != 120 || cfg.FrameRate.Menu != 15 {
		t.Errorf("FrameRate = %+v", cfg.FrameRate)
	}
	if cfg.StartTheme().Dark {
		t.Errorf("StartTheme() should be light")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "trainer.yaml", "theme: light\n")
	t.Setenv("TRAINER_THEME", "dark")
	t.Setenv("TRAINER_GAME_FPS", "30")
	t.Setenv("TRAINER_FIELD_WIDTH", "800")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, expected env override dark", cfg.Theme)
	}
	if cfg.FrameRate.Game != 30 {
		t.Errorf("FrameRate.Game = %d, expected 30", cfg.FrameRate.Game)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Field.Width = %d, expected 800", cfg.Field.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "trainer.yaml", "field: [1, 2\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Field.Width = 0 }},
		{"negative height", func(c *Config) { c.Field.Height = -1 }},
		{"zero game fps", func(c *Config) { c.FrameRate.Game = 0 }},
		{"zero menu fps", func(c *Config) { c.FrameRate.Menu = 0 }},
		{"negative dwell", func(c *Config) { c.ResultDwellMs = -1 }},
		{"unknown theme", func(c *Config) { c.Theme = "purple" }},
		{"inverted spawn range", func(c *Config) {
			c.Reaction.SpawnDelayMinMs = 900
			c.Reaction.SpawnDelayMaxMs = 100
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime(42)
	if rc.FieldW != 900 || rc.FieldH != 600 {
		t.Errorf("field = %vx%v", rc.FieldW, rc.FieldH)
	}
	if rc.TickRate != 60 || rc.MenuRate != 30 {
		t.Errorf("rates = %d/%d", rc.TickRate, rc.MenuRate)
	}
	if rc.ResultDwell != 3*time.Second {
		t.Errorf("ResultDwell = %v", rc.ResultDwell)
	}
	if rc.Seed != 42 {
		t.Errorf("Seed = %d", rc.Seed)
	}
}
