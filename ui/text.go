// Package ui provides screen-space text labels: a Text component, a yaml
// layout loader, a named-label finder, and an ebiten draw system.
package ui

import (
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ajwinter/amethyst/ecs"
	"github.com/ajwinter/amethyst/renderer"
)

// Text is a screen-space label. X and Y are pixels from the top-left
// corner; Size is the glyph height in pixels.
type Text struct {
	Text  string
	X     float64
	Y     float64
	Size  float64
	Color [4]uint8
}

// baseFace is the bitmap face labels are rendered with; Text.Size scales
// it up or down from its native height.
var baseFace = etext.NewGoXFace(basicfont.Face7x13)

const baseFaceSize = 13.0

// TextRenderSystem draws every Text component onto the frame's screen.
// Register it on the render scheduler, after RenderSystem so labels
// overlay the scene.
type TextRenderSystem struct {
	Screen ecs.Singleton[renderer.Screen]
	Labels ecs.Query[struct {
		*Text
	}]
}

func (s *TextRenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}

	for item := range s.Labels.Iter() {
		drawLabel(screen.Image, item.Text)
	}
}

func drawLabel(screen *ebiten.Image, label *Text) {
	if label.Text == "" {
		return
	}

	size := label.Size
	if size <= 0 {
		size = baseFaceSize
	}

	opts := &etext.DrawOptions{}
	opts.GeoM.Scale(size/baseFaceSize, size/baseFaceSize)
	opts.GeoM.Translate(label.X, label.Y)
	opts.ColorScale.Scale(
		float32(label.Color[0])/255,
		float32(label.Color[1])/255,
		float32(label.Color[2])/255,
		float32(label.Color[3])/255,
	)

	etext.Draw(screen, label.Text, baseFace, opts)
}
