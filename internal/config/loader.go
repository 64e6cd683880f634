package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load loads the trainer configuration.
// Search order: customPath -> ~/.trainer/config.{yaml,toml} -> ./configs/trainer.yaml -> embedded default.
// Environment variables (TRAINER_*) are applied on top, then the result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile resolves and decodes the first available config file.
func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"config.yaml", "config.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if data, err := os.ReadFile(userCfgPath); err == nil {
				candidate := Default()
				if err := decode(userCfgPath, data, &candidate); err == nil {
					return candidate, nil
				}
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/trainer.yaml"); err == nil {
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTrainerYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the decoder by file extension; anything that is not .toml
// is read as YAML.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trainer", filename)
}
