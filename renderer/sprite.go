package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRender is the material side of a drawable entity: the albedo
// image plus a color multiplier. TexturePath records the asset the image
// was loaded from so hot reload can retarget it.
type SpriteRender struct {
	Image       *ebiten.Image
	TexturePath string
	Color       [4]uint8
}

// White returns the neutral color multiplier.
func White() [4]uint8 {
	return [4]uint8{255, 255, 255, 255}
}
