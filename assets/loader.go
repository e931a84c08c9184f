package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Loader reads assets relative to a root directory.
type Loader struct {
	root string
	log  zerolog.Logger
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string, log zerolog.Logger) *Loader {
	return &Loader{root: root, log: log}
}

// Root returns the loader's asset root directory.
func (l *Loader) Root() string {
	return l.root
}

func (l *Loader) path(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// ReadFile reads a raw asset file relative to the root.
func (l *Loader) ReadFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(l.path(rel))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", rel, err)
	}
	return data, nil
}

func (l *Loader) decodeImage(rel string) (image.Image, error) {
	f, err := os.Open(l.path(rel))
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", rel, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", rel, err)
	}
	return img, nil
}

// LoadTexture decodes an image asset into an ebiten image. Synchronous;
// must be called on the tick thread.
func (l *Loader) LoadTexture(rel string) (*ebiten.Image, error) {
	img, err := l.decodeImage(rel)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
