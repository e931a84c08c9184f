package ecs_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajwinter/amethyst/ecs"
)

type commandTestSystem struct {
	act func(frame *ecs.UpdateFrame)
}

func (s *commandTestSystem) Execute(frame *ecs.UpdateFrame) {
	s.act(frame)
}

func runFrame(storage *ecs.Storage, act func(frame *ecs.UpdateFrame)) {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&commandTestSystem{act: act})
	scheduler.Once(1.0)
}

func TestCommandsSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	runFrame(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{X: 1}, Velocity{DX: 2})
	})

	count := 0
	for item := range ecs.NewView[struct {
		*Position
		*Velocity
	}](storage).Iter() {
		assert.Equal(t, 1.0, item.Position.X)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	runFrame(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Delete(id)
	})

	assert.Nil(t, ecs.ReadComponent[Position](storage, id))
}

func TestCommandsAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2}, Marker{})

	runFrame(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.AddComponent(a, Marker{})
		frame.Commands.RemoveComponent(b, reflect.TypeOf(Marker{}))
	})

	markerCount := 0
	for range ecs.NewView[struct {
		*Position
		*Marker
	}](storage).Iter() {
		markerCount++
	}
	assert.Equal(t, 1, markerCount)
}

func TestCommandsDeleteWinsOverAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	runFrame(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.AddComponent(id, Marker{})
		frame.Commands.Delete(id)
	})

	assert.Nil(t, ecs.ReadComponent[Position](storage, id))

	total := 0
	for range ecs.NewView[struct{ *Position }](storage).Iter() {
		total++
	}
	assert.Equal(t, 0, total)
}

func TestCommandsDefer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ran := false
	var seenSpawn bool

	runFrame(storage, func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{X: 5})
		frame.Commands.Defer(func() {
			ran = true
			// Defers run after structural changes are applied.
			for range ecs.NewView[struct{ *Position }](storage).Iter() {
				seenSpawn = true
			}
		})
	})

	assert.True(t, ran)
	assert.True(t, seenSpawn)
}
