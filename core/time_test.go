package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
)

func TestTimeSystem(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[core.Time](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&core.TimeSystem{})

	scheduler.Once(1.0 / 60.0)

	var clock *core.Time
	assert.True(t, storage.ReadSingleton(&clock))
	assert.Equal(t, uint64(1), clock.FrameNumber)
	assert.InDelta(t, 1.0/60.0, clock.DeltaSeconds, 1e-15)

	scheduler.Once(0.5)
	assert.Equal(t, uint64(2), clock.FrameNumber)
	assert.Equal(t, 0.5, clock.DeltaSeconds)
}
