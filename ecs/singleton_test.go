package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/ecs"
)

type clock struct {
	Elapsed float64
	Frame   uint64
}

type settings struct {
	Difficulty int
}

func TestSingletonAccessor(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	// First accessor creates the singleton from the initializer.
	s := ecs.NewSingleton[clock](storage, clock{Elapsed: 1.5})
	assert.True(t, s.Exists())
	assert.Equal(t, 1.5, s.Get().Elapsed)

	// A second accessor shares the same instance.
	other := ecs.NewSingleton[clock](storage)
	other.Get().Frame = 42
	assert.Equal(t, uint64(42), s.Get().Frame)
}

func TestSingletonZeroValueDefault(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	s := ecs.NewSingleton[settings](storage)
	assert.True(t, s.Exists())
	assert.Equal(t, 0, s.Get().Difficulty)
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(settings{Difficulty: 3})

	var got *settings
	assert.True(t, storage.ReadSingleton(&got))
	assert.Equal(t, 3, got.Difficulty)

	got.Difficulty = 7
	var again *settings
	storage.ReadSingleton(&again)
	assert.Equal(t, 7, again.Difficulty)

	var missing *clock
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)
}

func TestAddSingletonReplaces(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(settings{Difficulty: 1})
	storage.AddSingleton(settings{Difficulty: 2})

	var got *settings
	assert.True(t, storage.ReadSingleton(&got))
	assert.Equal(t, 2, got.Difficulty)
}

type clockReaderSystem struct {
	Clock ecs.Singleton[clock]
	seen  float64
}

func (s *clockReaderSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = s.Clock.Get().Elapsed
}

func TestSingletonFieldInitializedByScheduler(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(clock{Elapsed: 9.5})

	scheduler := ecs.NewScheduler(storage)
	reader := &clockReaderSystem{}
	scheduler.Register(reader)

	scheduler.Once(1.0)

	assert.Equal(t, 9.5, reader.seen)
}
