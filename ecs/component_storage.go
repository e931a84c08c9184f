package ecs

import (
	"iter"
	"reflect"
)

// componentStorage is the type-erased interface over a single component
// column within an archetype.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Count() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to storage factories. Every
// Storage owns its own registry, so independent worlds never interfere.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers the component type T with the registry.
// Spawning an entity with an unregistered component type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks. Deleted
// slots are recycled; indices stay stable for the lifetime of a slot.
type blockStorage[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func (cs *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, [blockSize]T{})
			cs.filled = append(cs.filled, [blockSize]bool{})
		}
	}

	cs.blocks[index/blockSize][index%blockSize] = value
	cs.filled[index/blockSize][index%blockSize] = true
	cs.count++
	return index
}

func (cs *blockStorage[T]) Get(index int) any {
	if index < 0 || index/blockSize >= len(cs.blocks) {
		return nil
	}
	if !cs.filled[index/blockSize][index%blockSize] {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Delete(index int) {
	if index < 0 || index/blockSize >= len(cs.blocks) {
		return
	}
	if cs.filled[index/blockSize][index%blockSize] {
		cs.filled[index/blockSize][index%blockSize] = false
		var zero T
		cs.blocks[index/blockSize][index%blockSize] = zero
		cs.freeSlots = append(cs.freeSlots, index)
		cs.count--
	}
}

func (cs *blockStorage[T]) Has(index int) bool {
	if index < 0 || index/blockSize >= len(cs.blocks) {
		return false
	}
	return cs.filled[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Count() int {
	return cs.count
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if cs.filled[i/blockSize][i%blockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
