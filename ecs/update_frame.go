package ecs

// UpdateFrame is handed to every system during a single Scheduler tick.
type UpdateFrame struct {
	// Number counts ticks of the scheduler, starting at 1.
	Number uint64
	// DeltaTime is the tick duration in seconds.
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(number uint64, dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Number:    number,
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
