package core

import "github.com/ajwinter/amethyst/ecs"

// Named attaches a logical name to an entity so other systems can look it
// up without holding an id. Names are not required to be unique; lookups
// return the first match.
type Named struct {
	Name string
}

// FindNamed resolves a logical name to an entity id by scanning all Named
// entities. Returns false when no entity carries the name.
func FindNamed(storage *ecs.Storage, name string) (ecs.EntityId, bool) {
	view := ecs.NewView[struct {
		Id ecs.EntityId
		*Named
	}](storage)

	for item := range view.Iter() {
		if item.Named.Name == name {
			return item.Id, true
		}
	}
	return 0, false
}
