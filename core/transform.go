package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an entity's spatial state: translation, orientation and
// scale, composable but stored separately so systems can touch one part
// without disturbing the others.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// SetTranslation positions the transform, leaving orientation and scale
// untouched.
func (t *Transform) SetTranslation(x, y, z float64) *Transform {
	t.Translation = mgl64.Vec3{x, y, z}
	return t
}

// SetScale scales the transform uniformly per axis.
func (t *Transform) SetScale(x, y, z float64) *Transform {
	t.Scale = mgl64.Vec3{x, y, z}
	return t
}

// PrependRotation composes q onto the current orientation from the left
// (q * current). Translation and scale are untouched.
func (t *Transform) PrependRotation(q mgl64.Quat) *Transform {
	t.Rotation = q.Mul(t.Rotation).Normalize()
	return t
}

// PrependRotationZ left-composes a rotation of angle radians about the
// world Z (up) axis.
func (t *Transform) PrependRotationZ(angle float64) *Transform {
	return t.PrependRotation(mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1}))
}

// RotationAngleZ returns the orientation's rotation angle about the Z
// axis in radians. Full turns wrap.
func (t *Transform) RotationAngleZ() float64 {
	q := t.Rotation.Normalize()
	return 2 * math.Atan2(q.V[2], q.W)
}
