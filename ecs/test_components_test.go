package ecs_test

import "github.com/ajwinter/amethyst/ecs"

// Shared component types for the package tests.
type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Label struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Marker struct{}

type Score int32

type Follower struct {
	Target *ecs.EntityRef
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Marker](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Follower](registry)
	return registry
}
