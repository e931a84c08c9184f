package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/core"
)

func itemAtZ(z float64) spriteItem {
	transform := core.NewTransform()
	transform.SetTranslation(0, 0, z)
	return spriteItem{
		transform:   &transform,
		sprite:      &SpriteRender{},
		transparent: true,
	}
}

func TestSortBackToFront(t *testing.T) {
	items := []spriteItem{itemAtZ(5), itemAtZ(-1), itemAtZ(2)}

	sortBackToFront(items)

	assert.Equal(t, -1.0, items[0].transform.Translation.Z())
	assert.Equal(t, 2.0, items[1].transform.Translation.Z())
	assert.Equal(t, 5.0, items[2].transform.Translation.Z())
}

func TestSortBackToFrontStable(t *testing.T) {
	a := itemAtZ(1)
	b := itemAtZ(1)
	items := []spriteItem{a, b}

	sortBackToFront(items)

	// Equal depths keep their submission order.
	assert.Same(t, a.sprite, items[0].sprite)
	assert.Same(t, b.sprite, items[1].sprite)
}

func TestWhite(t *testing.T) {
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, White())
}
