package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/chippick).
// It can be overridden with the CHIPPICK_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("CHIPPICK_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "chippick")
	}
	return filepath.Join(home, ".config", "chippick")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Resolve makes a relative path from the config file absolute against Dir.
func Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(Dir(), path)
}
