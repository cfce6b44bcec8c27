package sketchlang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the CLI and the figure container.
type Config struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Dims    int     `yaml:"dims"`
	Format  string  `yaml:"format"`
	Prompt  string  `yaml:"prompt"`
	History string  `yaml:"history"`
}

func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  100,
		Dims:    2,
		Format:  "svg",
		Prompt:  "==> ",
		History: ".sketch_history",
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults,
// so missing keys keep their default values. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
