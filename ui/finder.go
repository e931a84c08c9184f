package ui

import (
	"github.com/ajwinter/amethyst/core"
	"github.com/ajwinter/amethyst/ecs"
)

// Finder resolves logical label names to entities. Absence is a normal
// transient state while layouts are still loading, so Find reports it
// through the bool rather than an error.
type Finder struct {
	storage *ecs.Storage
}

// NewFinder creates a Finder over the given storage.
func NewFinder(storage *ecs.Storage) *Finder {
	return &Finder{storage: storage}
}

// Find returns the first entity whose Named component matches name.
func (f *Finder) Find(name string) (ecs.EntityId, bool) {
	return core.FindNamed(f.storage, name)
}
