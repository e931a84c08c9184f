package ecs

// System is a behavior that runs once per frame over entities with
// specific components. Implementations declare Query and Singleton fields
// for their data access; the Scheduler initializes those on registration.
// Any other fields are private state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// DependentSystem is a System that must run after other systems. RunAfter
// returns the type names of the systems this one depends on; the Scheduler
// orders execution accordingly.
type DependentSystem interface {
	System
	RunAfter() []string
}
