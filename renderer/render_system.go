package renderer

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
)

// Screen wraps the frame's ebiten render target as a singleton. The host
// game sets it at the start of every Draw call.
type Screen struct {
	*ebiten.Image
}

type spriteItem struct {
	transform   *core.Transform
	sprite      *SpriteRender
	transparent bool
}

// sortBackToFront orders transparent sprites by ascending transform Z so
// farther sprites are composited first.
func sortBackToFront(items []spriteItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].transform.Translation.Z() < items[j].transform.Translation.Z()
	})
}

// RenderSystem draws all sprite entities through the first camera. Opaque
// sprites draw first in arbitrary order, then transparent sprites back to
// front. Register it on a render scheduler executed from ebiten's Draw.
type RenderSystem struct {
	Screen  ecs.Singleton[Screen]
	Cameras ecs.Query[struct {
		*Camera
		*core.Transform
	}]
	Sprites ecs.Query[struct {
		*core.Transform
		*SpriteRender
		Transparent *Transparent `ecs:"optional"`
	}]

	ClearColor [4]uint8

	opaque      []spriteItem
	transparent []spriteItem
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}

	cc := s.ClearColor
	screen.Fill(color.RGBA{cc[0], cc[1], cc[2], cc[3]})

	var camera *Camera
	var cameraTransform *core.Transform
	for item := range s.Cameras.Iter() {
		camera = item.Camera
		cameraTransform = item.Transform
		break
	}
	if camera == nil {
		return
	}

	s.opaque = s.opaque[:0]
	s.transparent = s.transparent[:0]
	for item := range s.Sprites.Iter() {
		entry := spriteItem{
			transform:   item.Transform,
			sprite:      item.SpriteRender,
			transparent: item.Transparent != nil,
		}
		if entry.transparent {
			s.transparent = append(s.transparent, entry)
		} else {
			s.opaque = append(s.opaque, entry)
		}
	}
	sortBackToFront(s.transparent)

	for _, item := range s.opaque {
		s.drawSprite(screen.Image, camera, cameraTransform, item)
	}
	for _, item := range s.transparent {
		s.drawSprite(screen.Image, camera, cameraTransform, item)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, camera *Camera, cameraTransform *core.Transform, item spriteItem) {
	img := item.sprite.Image
	if img == nil {
		return
	}

	bounds := img.Bounds()
	screenW := float64(screen.Bounds().Dx())
	screenH := float64(screen.Bounds().Dy())
	ppu := screenW / camera.Width

	opts := &ebiten.DrawImageOptions{}

	// Center the image, scale it to its world size, orient it relative to
	// the camera, then place it on screen.
	opts.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	opts.GeoM.Scale(
		item.transform.Scale.X()*ppu/float64(bounds.Dx()),
		item.transform.Scale.Y()*ppu/float64(bounds.Dy()),
	)
	opts.GeoM.Rotate(cameraTransform.RotationAngleZ() - item.transform.RotationAngleZ())

	relX := item.transform.Translation.X() - cameraTransform.Translation.X()
	relY := item.transform.Translation.Y() - cameraTransform.Translation.Y()
	viewAngle := -cameraTransform.RotationAngleZ()
	rotX := relX*math.Cos(viewAngle) - relY*math.Sin(viewAngle)
	rotY := relX*math.Sin(viewAngle) + relY*math.Cos(viewAngle)

	opts.GeoM.Translate(screenW/2+rotX*ppu, screenH/2-rotY*ppu)

	c := item.sprite.Color
	opts.ColorScale.Scale(
		float32(c[0])/255,
		float32(c[1])/255,
		float32(c[2])/255,
		float32(c[3])/255,
	)

	screen.DrawImage(img, opts)
}
