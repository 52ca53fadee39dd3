package app

import (
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds the settings fixtool.toml may override. Command-line
// flags always take precedence over values loaded from the file.
type Config struct {
	DictDir  string `toml:"dict_dir"`
	LogLevel string `toml:"log_level"`
	Color    bool   `toml:"color"`
}

// defaultConfig returns the settings used when no config file is
// present and no flag overrides them.
func defaultConfig() Config {
	return Config{LogLevel: "info", Color: true}
}

// loadConfig reads path and unmarshals it into a Config layered over
// defaultConfig. A missing file is not an error: fixtool.toml is
// optional, and the caller falls back entirely to flags and defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
