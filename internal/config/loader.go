package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the game configuration and validates it.
// Search order: customPath -> ~/.pacman/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg, err := loadPacman(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if ok := tryLoad(userCfgPath, &cfg); ok {
			return cfg, nil
		}
	}

	if ok := tryLoad(filepath.Join("configs", "pacman.yaml"), &cfg); ok {
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil
	}
	return cfg, nil
}

// tryLoad overlays path onto cfg. cfg is left untouched if the file is missing
// or does not parse.
func tryLoad(path string, cfg *PacmanConfig) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	candidate := *cfg
	if err := yaml.Unmarshal(data, &candidate); err != nil {
		return false
	}
	*cfg = candidate
	return true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
