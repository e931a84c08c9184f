package ui

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ajwinter/amethyst/assets"
	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
)

// LabelSpec is one label within a yaml layout file.
type LabelSpec struct {
	Name  string   `yaml:"name"`
	Text  string   `yaml:"text"`
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Size  float64  `yaml:"size"`
	Color [4]uint8 `yaml:"color"`
}

type layoutFile struct {
	Labels []LabelSpec `yaml:"labels"`
}

// Creator instantiates label entities from yaml layout files.
type Creator struct {
	loader *assets.Loader
}

// NewCreator creates a Creator reading layouts through the given loader.
func NewCreator(loader *assets.Loader) *Creator {
	return &Creator{loader: loader}
}

// Create parses the layout at rel and spawns one entity per label, each
// carrying Text and (when named) core.Named. The outcome is recorded in
// progress.
func (c *Creator) Create(rel string, storage *ecs.Storage, progress *assets.ProgressCounter) error {
	progress.Start()

	data, err := c.loader.ReadFile(rel)
	if err != nil {
		progress.Fail(err)
		return err
	}

	var layout layoutFile
	if err := yaml.Unmarshal(data, &layout); err != nil {
		err = fmt.Errorf("parse ui layout %s: %w", rel, err)
		progress.Fail(err)
		return err
	}

	for _, spec := range layout.Labels {
		color := spec.Color
		if color == ([4]uint8{}) {
			color = [4]uint8{255, 255, 255, 255}
		}

		label := Text{
			Text:  spec.Text,
			X:     spec.X,
			Y:     spec.Y,
			Size:  spec.Size,
			Color: color,
		}

		if spec.Name != "" {
			storage.Spawn(core.Named{Name: spec.Name}, label)
		} else {
			storage.Spawn(label)
		}
	}

	progress.Finish()
	return nil
}
