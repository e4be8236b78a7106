package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Directory string    `yaml:"directory"` // path to a directory YAML file; empty uses the built-in list
	UI        UIConfig  `yaml:"ui"`
	Log       LogConfig `yaml:"log"`
}

// UIConfig holds the picker's visible strings and input options.
type UIConfig struct {
	Header      string `yaml:"header"`
	Placeholder string `yaml:"placeholder"`
	EmptyText   string `yaml:"empty_text"`
	Mouse       bool   `yaml:"mouse"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Header:      "Pick Users",
			Placeholder: "Add new user...",
			EmptyText:   "No items found",
			Mouse:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}
