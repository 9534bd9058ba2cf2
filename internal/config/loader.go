package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRubiks loads the cube configuration.
// Search order: customPath -> ~/.rubiks/configs/rubiks.yaml -> ./configs/rubiks.yaml -> embedded default.
// Keys missing from the file keep their default. RUBIKS_* environment
// variables are applied last.
func LoadRubiks(customPath string) (RubiksConfig, error) {
	cfg, err := loadRubiksFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ParseEnv(&cfg.Gameplay); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRubiksFile(customPath string) (RubiksConfig, error) {
	cfg := DefaultRubiksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("rubiks.yaml"),
		filepath.Join("configs", "rubiks.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultRubiksConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRubiksYAML, &cfg); err != nil {
		return DefaultRubiksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rubiks", "configs", filename)
}
