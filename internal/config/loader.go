package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game settings.
// Search order: customPath -> ~/.flappybird/config.yaml -> ./configs/flappybird.yaml -> embedded default.
// All loaded settings are validated: bad values are defaulted or clamped, never fatal.
func Load(customPath string) (Settings, error) {
	var s Settings

	// Try custom path first; an explicit path that fails is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		s.Validate()
		return s, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil {
				s.Validate()
				return s, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappybird.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &s); err == nil {
			s.Validate()
			return s, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	s.Validate()
	return s, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappybird", filename)
}
