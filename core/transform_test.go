package core_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/core"
)

func TestNewTransformIsIdentity(t *testing.T) {
	transform := core.NewTransform()

	assert.Equal(t, mgl64.Vec3{}, transform.Translation)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, transform.Scale)
	assert.InDelta(t, 0.0, transform.RotationAngleZ(), 1e-12)
}

func TestSetTranslationAndScale(t *testing.T) {
	transform := core.NewTransform()
	transform.SetTranslation(1, 2, 3).SetScale(2, 2, 2)

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, transform.Translation)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, transform.Scale)
}

func TestPrependRotationZ(t *testing.T) {
	transform := core.NewTransform()
	transform.PrependRotationZ(math.Pi / 2)

	assert.InDelta(t, math.Pi/2, transform.RotationAngleZ(), 1e-12)
}

func TestPrependRotationZAccumulates(t *testing.T) {
	transform := core.NewTransform()

	// 600 ticks at 1/60s with 0.1 rad/s comes out to one radian.
	step := 0.1 * (1.0 / 60.0)
	for i := 0; i < 600; i++ {
		transform.PrependRotationZ(step)
	}

	assert.InDelta(t, 1.0, transform.RotationAngleZ(), 1e-9)
}

func TestPrependRotationLeftComposes(t *testing.T) {
	a := mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1})
	b := mgl64.QuatRotate(0.5, mgl64.Vec3{0, 0, 1})

	transform := core.NewTransform()
	transform.PrependRotation(a)
	transform.PrependRotation(b)

	want := b.Mul(a)
	assert.InDelta(t, want.W, transform.Rotation.W, 1e-12)
	assert.InDelta(t, want.V[2], transform.Rotation.V[2], 1e-12)
}

func TestRotationLeavesTranslationAlone(t *testing.T) {
	transform := core.NewTransform()
	transform.SetTranslation(4, 5, 6)
	transform.PrependRotationZ(1.2)

	assert.Equal(t, mgl64.Vec3{4, 5, 6}, transform.Translation)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, transform.Scale)
}

func TestRotationAngleZWraps(t *testing.T) {
	transform := core.NewTransform()
	transform.PrependRotationZ(3 * math.Pi)

	// A 3*pi turn reads the same as a half turn.
	assert.InDelta(t, math.Pi, math.Abs(transform.RotationAngleZ()), 1e-9)
}
