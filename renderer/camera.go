// Package renderer draws sprite entities through ebiten: an orthographic
// camera, opaque and transparent sprite passes, and a yaml display config.
package renderer

// Camera marks an entity as a viewpoint. Width and Height are the
// orthographic extents in world units; the render system projects the
// world through the camera's Transform (translation and Z rotation).
type Camera struct {
	Width  float64
	Height float64
}

// Transparent marks a sprite entity for the transparent pass: drawn after
// all opaque sprites, sorted back to front by transform Z.
type Transparent struct{}
