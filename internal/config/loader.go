package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ninjaFile = "ninja.yaml"

// Source names for LoadNinjaFrom results.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// LoadNinja loads the runtime configuration.
// Search order: customPath -> ~/.ninja/configs/ninja.yaml -> ./configs/ninja.yaml -> embedded default
func LoadNinja(customPath string) (NinjaConfig, error) {
	cfg, _, err := LoadNinjaFrom(customPath)
	return cfg, err
}

// LoadNinjaFrom is LoadNinja that also reports where the configuration came
// from: a file path, SourceEmbedded or SourceHardcoded. Fields missing from
// a file keep their default values.
func LoadNinjaFrom(customPath string) (NinjaConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NinjaConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseNinja(data)
		if err != nil {
			return NinjaConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ninjaFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseNinja(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", ninjaFile)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parseNinja(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseNinja(defaultNinjaYAML)
	if err != nil {
		return DefaultNinjaConfig(), SourceHardcoded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func parseNinja(data []byte) (NinjaConfig, error) {
	cfg := DefaultNinjaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ninja", "configs", filename)
}

// Marshal encodes the configuration as YAML.
func (c NinjaConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
