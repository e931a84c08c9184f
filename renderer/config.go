package renderer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DisplayConfig is the window and clear-target configuration, loaded from
// a yaml file next to the app's other assets.
type DisplayConfig struct {
	Title      string   `yaml:"title"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	ClearColor [4]uint8 `yaml:"clear_color"`
}

// DefaultDisplayConfig returns a 960x540 window with a black clear color.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Title:      "amethyst",
		Width:      960,
		Height:     540,
		ClearColor: [4]uint8{0, 0, 0, 255},
	}
}

// LoadDisplayConfig reads a DisplayConfig from a yaml file. Fields absent
// from the file keep their default values.
func LoadDisplayConfig(path string) (DisplayConfig, error) {
	cfg := DefaultDisplayConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read display config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse display config %s: %w", path, err)
	}
	return cfg, nil
}
