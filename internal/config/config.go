package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings read from config.yaml. Flags may
// override individual fields after loading.
type Config struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"` // debug|info|warn|error
	Solver   string `yaml:"solver"`    // candidates|backtrack
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
		Solver:   "candidates",
	}
}

// Load reads path and merges it over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
