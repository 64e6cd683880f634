// Package config provides YAML/TOML-based trainer configuration with
// environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Config contains all tunable trainer settings.
type Config struct {
	Field         FieldConfig     `yaml:"field" toml:"field"`
	FrameRate     FrameRateConfig `yaml:"frame_rate" toml:"frame_rate"`
	Theme         string          `yaml:"theme" toml:"theme" env:"TRAINER_THEME"`
	ResultDwellMs int             `yaml:"result_dwell_ms" toml:"result_dwell_ms" env:"TRAINER_RESULT_DWELL_MS"`
	Reaction      ReactionConfig  `yaml:"reaction" toml:"reaction"`
}

// FieldConfig defines the logical play-field size.
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width" env:"TRAINER_FIELD_WIDTH"`
	Height int `yaml:"height" toml:"height" env:"TRAINER_FIELD_HEIGHT"`
}

// FrameRateConfig defines frame pacing for gameplay and menus.
type FrameRateConfig struct {
	Game int `yaml:"game" toml:"game" env:"TRAINER_GAME_FPS"`
	Menu int `yaml:"menu" toml:"menu" env:"TRAINER_MENU_FPS"`
}

// ReactionConfig defines aim-game tuning.
type ReactionConfig struct {
	SpawnDelayMinMs int `yaml:"spawn_delay_min_ms" toml:"spawn_delay_min_ms"`
	SpawnDelayMaxMs int `yaml:"spawn_delay_max_ms" toml:"spawn_delay_max_ms"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must be positive, got %dx%d: %w",
			c.Field.Width, c.Field.Height, core.ErrInvalidConfiguration)
	}
	if c.FrameRate.Game <= 0 || c.FrameRate.Menu <= 0 {
		return fmt.Errorf("config: frame rates must be positive, got game=%d menu=%d: %w",
			c.FrameRate.Game, c.FrameRate.Menu, core.ErrInvalidConfiguration)
	}
	if c.ResultDwellMs < 0 {
		return fmt.Errorf("config: result_dwell_ms must not be negative: %w", core.ErrInvalidConfiguration)
	}
	if _, err := core.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	r := c.Reaction
	if r.SpawnDelayMinMs < 0 || r.SpawnDelayMaxMs < r.SpawnDelayMinMs {
		return fmt.Errorf("config: spawn delay range [%d, %d] ms is invalid: %w",
			r.SpawnDelayMinMs, r.SpawnDelayMaxMs, core.ErrInvalidConfiguration)
	}
	return nil
}

// Runtime converts the config into the values handed to games.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		FieldW:      float64(c.Field.Width),
		FieldH:      float64(c.Field.Height),
		TickRate:    c.FrameRate.Game,
		MenuRate:    c.FrameRate.Menu,
		ResultDwell: time.Duration(c.ResultDwellMs) * time.Millisecond,
		Seed:        seed,
	}
}

// StartTheme returns the configured starting theme, dark if unparseable.
func (c Config) StartTheme() core.Theme {
	th, err := core.ParseTheme(c.Theme)
	if err != nil {
		return core.DefaultTheme()
	}
	return th
}

// SpawnDelay returns the bounds of the randomized delay between targets.
func (r ReactionConfig) SpawnDelay() (time.Duration, time.Duration) {
	return time.Duration(r.SpawnDelayMinMs) * time.Millisecond,
		time.Duration(r.SpawnDelayMaxMs) * time.Millisecond
}
