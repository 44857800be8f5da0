package ecs

// System is a unit of per-frame behaviour. Exported Query and Singleton fields
// on a system struct are wired up by the Scheduler when the system is registered;
// any other fields are left alone and persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
