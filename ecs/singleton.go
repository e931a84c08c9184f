package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry pins one singleton component value. The holder keeps the
// boxed value reachable so dataPtr stays valid.
type singletonEntry struct {
	holder  reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores value as the singleton instance for its type,
// replacing any previous instance.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	holder := reflect.New(typ)
	holder.Elem().Set(reflect.ValueOf(value))

	s.singletons[typ] = &singletonEntry{
		holder:  holder,
		dataPtr: unsafe.Pointer(holder.Pointer()),
	}
}

// ReadSingleton fills out (a **T) with a pointer to the singleton of type T.
// Returns false and leaves out untouched if no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a component pointer")
	}

	entry := s.getSingletonEntry(outValue.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	outValue.Elem().Set(entry.holder)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singleton provides typed access to a single component instance that is
// not attached to any entity. Use it for global state such as clocks,
// input, or configuration.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton creates a Singleton accessor for the given storage. If the
// singleton is absent it is created, from initializer when provided or the
// zero value otherwise, so it is guaranteed to exist afterwards.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	var zero T
	componentType := reflect.TypeOf(zero)

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init binds the Singleton to a storage. Called by the Scheduler when a
// system declaring a Singleton field is registered.
func (s *Singleton[T]) Init(storage *Storage) {
	var zero T
	s.storage = storage
	s.componentType = reflect.TypeOf(zero)
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not
// been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return s.componentPtr != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
