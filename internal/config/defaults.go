package config

import (
	_ "embed"
)

//go:embed defaults/trainer.yaml
var defaultTrainerYAML []byte

// Default returns the default trainer configuration.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  900,
			Height: 600,
		},
		FrameRate: FrameRateConfig{
			Game: 60,
			Menu: 30,
		},
		Theme:         "dark",
		ResultDwellMs: 3000,
		Reaction: ReactionConfig{
			SpawnDelayMinMs: 500,
			SpawnDelayMaxMs: 1500,
		},
	}
}
