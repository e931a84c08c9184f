package assets

import (
	"fmt"
	"image"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
	"github.com/ajwinter/amethyst/renderer"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransformSpec is a prefab's transform block.
type TransformSpec struct {
	Translation [3]float64 `yaml:"translation"`
	RotationZ   float64    `yaml:"rotation_z"`
	Scale       [3]float64 `yaml:"scale"`
}

// CameraSpec is a prefab's camera block: orthographic extents in world
// units.
type CameraSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteSpec is a prefab's sprite block. Texture is a path relative to
// the asset root; an empty color means white.
type SpriteSpec struct {
	Texture string   `yaml:"texture"`
	Color   [4]uint8 `yaml:"color"`
}

// PrefabEntity is one entity template within a prefab.
type PrefabEntity struct {
	Name        string         `yaml:"name"`
	Transform   *TransformSpec `yaml:"transform"`
	Camera      *CameraSpec    `yaml:"camera"`
	Sprite      *SpriteSpec    `yaml:"sprite"`
	Transparent bool           `yaml:"transparent"`
}

// Prefab is a parsed scene template plus the decoded images its sprites
// reference. Instantiate spawns it into a storage.
type Prefab struct {
	Entities []PrefabEntity `yaml:"entities"`

	textures map[string]image.Image
}

// PrefabHandle is the future for an in-flight prefab load. Prefab returns
// nil until the load has completed successfully.
type PrefabHandle struct {
	mu     sync.Mutex
	prefab *Prefab
}

// Prefab returns the loaded prefab, or nil while loading or after a
// failure.
func (h *PrefabHandle) Prefab() *Prefab {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.prefab
}

func (h *PrefabHandle) set(p *Prefab) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prefab = p
}

// LoadPrefab parses the yaml prefab at rel (relative to the asset root)
// and decodes every referenced texture, on a background goroutine. The
// outcome is reported through progress; the handle carries the result.
func (l *Loader) LoadPrefab(rel string, progress *ProgressCounter) *PrefabHandle {
	handle := &PrefabHandle{}
	progress.Start()

	go func() {
		prefab, err := l.parsePrefab(rel)
		if err != nil {
			l.log.Error().Err(err).Str("prefab", rel).Msg("prefab load failed")
			progress.Fail(err)
			return
		}

		handle.set(prefab)
		l.log.Info().Str("prefab", rel).Int("entities", len(prefab.Entities)).Msg("prefab loaded")
		progress.Finish()
	}()

	return handle
}

func (l *Loader) parsePrefab(rel string) (*Prefab, error) {
	data, err := os.ReadFile(l.path(rel))
	if err != nil {
		return nil, fmt.Errorf("read prefab: %w", err)
	}

	prefab := &Prefab{textures: make(map[string]image.Image)}
	if err := yaml.Unmarshal(data, prefab); err != nil {
		return nil, fmt.Errorf("parse prefab %s: %w", rel, err)
	}

	for _, entity := range prefab.Entities {
		if entity.Sprite == nil || entity.Sprite.Texture == "" {
			continue
		}
		if _, ok := prefab.textures[entity.Sprite.Texture]; ok {
			continue
		}

		img, err := l.decodeImage(entity.Sprite.Texture)
		if err != nil {
			return nil, err
		}
		prefab.textures[entity.Sprite.Texture] = img
	}

	return prefab, nil
}

// Instantiate spawns every entity template into the storage and returns
// the spawned ids. Must be called on the tick thread: it creates ebiten
// images from the decoded textures.
func (p *Prefab) Instantiate(storage *ecs.Storage) []ecs.EntityId {
	ids := make([]ecs.EntityId, 0, len(p.Entities))

	for _, entity := range p.Entities {
		components := make([]any, 0, 4)

		if entity.Name != "" {
			components = append(components, core.Named{Name: entity.Name})
		}

		transform := core.NewTransform()
		if spec := entity.Transform; spec != nil {
			transform.SetTranslation(spec.Translation[0], spec.Translation[1], spec.Translation[2])
			if spec.Scale != [3]float64{} {
				transform.SetScale(spec.Scale[0], spec.Scale[1], spec.Scale[2])
			}
			if spec.RotationZ != 0 {
				transform.PrependRotationZ(spec.RotationZ)
			}
		}
		components = append(components, transform)

		if spec := entity.Camera; spec != nil {
			components = append(components, renderer.Camera{
				Width:  spec.Width,
				Height: spec.Height,
			})
		}

		if spec := entity.Sprite; spec != nil {
			sprite := renderer.SpriteRender{
				TexturePath: spec.Texture,
				Color:       spec.Color,
			}
			if sprite.Color == ([4]uint8{}) {
				sprite.Color = renderer.White()
			}
			if img, ok := p.textures[spec.Texture]; ok {
				sprite.Image = ebiten.NewImageFromImage(img)
			}
			components = append(components, sprite)
		}

		if entity.Transparent {
			components = append(components, renderer.Transparent{})
		}

		ids = append(ids, storage.Spawn(components...))
	}

	return ids
}
