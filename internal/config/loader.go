package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation rules.
// Search order: customPath -> ~/.petri/configs/petri.yaml -> ./configs/petri.yaml -> embedded default
func Load(customPath string) (Rules, error) {
	var r Rules

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return r, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &r); err != nil {
			return r, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return r, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("petri.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &r); err == nil {
				return r, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/petri.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &r); err == nil {
			return r, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRulesYAML, &r); err != nil {
		return DefaultRules(), nil // Fallback to hardcoded if embed fails
	}
	return r, nil
}

// userConfigPath returns the path to a config file in the user's config
// directory, or empty string if the home directory cannot be determined.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".petri", "configs", filename)
}
