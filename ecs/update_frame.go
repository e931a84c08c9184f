package ecs

// UpdateFrame carries the per-tick context handed to every system: the
// elapsed time since the previous tick, the command buffer flushed at the
// end of the tick, and the storage being updated.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
