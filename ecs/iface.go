package ecs

import "unsafe"

// iface mirrors the runtime layout of a non-empty interface value so the
// data pointer can be extracted without an allocation.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
