package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.lines/config.yaml -> ./configs/lines.yaml -> embedded default.
// Files found on the search path are layered over the defaults, so they
// only need to set the keys they change.
func Load(customPath string) (LinesConfig, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			layered := cfg
			if err := yaml.Unmarshal(data, &layered); err == nil {
				return layered, layered.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lines.yaml"); err == nil {
		layered := cfg
		if err := yaml.Unmarshal(data, &layered); err == nil {
			return layered, layered.Validate()
		}
	}

	return cfg, nil
}

// defaults returns the embedded default config, falling back to the
// hardcoded one if the embed cannot be parsed.
func defaults() LinesConfig {
	var cfg LinesConfig
	if err := yaml.Unmarshal(defaultLinesYAML, &cfg); err != nil {
		return DefaultLinesConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lines", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Marshal renders the config as YAML.
func Marshal(cfg LinesConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
