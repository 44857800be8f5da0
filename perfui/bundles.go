package perfui

// Bundle is a named group of entries that expands into components at spawn time.
type Bundle interface {
	Components() []any
}

// AllEntries holds every predefined entry. The system entries are only
// included after WithSystem.
type AllEntries struct {
	FPS               EntryFPS
	FPSWorst          EntryFPSWorst
	FrameTime         EntryFrameTime
	FrameTimeWorst    EntryFrameTimeWorst
	FrameCount        EntryFrameCount
	EntityCount       EntryEntityCount
	CPUUsage          *EntryCPUUsage
	MemUsage          *EntryMemUsage
	FixedTimestep     EntryFixedTimestep
	FixedOverstep     EntryFixedOverstep
	RunningTime       EntryRunningTime
	Clock             EntryClock
	CursorPosition    EntryCursorPosition
	WindowResolution  EntryWindowResolution
	WindowScaleFactor EntryWindowScaleFactor
	WindowMode        EntryWindowMode
	WindowPresentMode EntryWindowPresentMode
}

// NewAllEntries returns every predefined entry except the system ones.
func NewAllEntries() AllEntries {
	return AllEntries{
		FPS:               NewEntryFPS(),
		FPSWorst:          NewEntryFPSWorst(),
		FrameTime:         NewEntryFrameTime(),
		FrameTimeWorst:    NewEntryFrameTimeWorst(),
		FrameCount:        NewEntryFrameCount(),
		EntityCount:       NewEntryEntityCount(),
		FixedTimestep:     NewEntryFixedTimestep(),
		FixedOverstep:     NewEntryFixedOverstep(),
		RunningTime:       NewEntryRunningTime(),
		Clock:             NewEntryClock(),
		CursorPosition:    NewEntryCursorPosition(),
		WindowResolution:  NewEntryWindowResolution(),
		WindowScaleFactor: NewEntryWindowScaleFactor(),
		WindowMode:        NewEntryWindowMode(),
		WindowPresentMode: NewEntryWindowPresentMode(),
	}
}

// WithSystem adds the CPU and memory entries. Spawning them requires a Plugin
// built WithSystemInfo(true).
func (b AllEntries) WithSystem() AllEntries {
	system := NewSystemEntries()
	b.CPUUsage = &system.CPUUsage
	b.MemUsage = &system.MemUsage
	return b
}

// Components returns the entries, including CPU and memory when set.
func (b AllEntries) Components() []any {
	components := []any{
		b.FPS, b.FPSWorst, b.FrameTime, b.FrameTimeWorst, b.FrameCount, b.EntityCount,
	}
	if b.CPUUsage != nil {
		components = append(components, *b.CPUUsage)
	}
	if b.MemUsage != nil {
		components = append(components, *b.MemUsage)
	}
	return append(components,
		b.FixedTimestep, b.FixedOverstep, b.RunningTime, b.Clock,
		b.CursorPosition, b.WindowResolution, b.WindowScaleFactor, b.WindowMode, b.WindowPresentMode,
	)
}

// DefaultEntries is a curated selection of the most useful entries.
type DefaultEntries struct {
	FPS              EntryFPS
	FPSWorst         EntryFPSWorst
	FrameTime        EntryFrameTime
	FrameTimeWorst   EntryFrameTimeWorst
	EntityCount      EntryEntityCount
	CursorPosition   EntryCursorPosition
	WindowResolution EntryWindowResolution
}

// NewDefaultEntries returns the framerate, entity count, cursor and resolution entries.
func NewDefaultEntries() DefaultEntries {
	return DefaultEntries{
		FPS:              NewEntryFPS(),
		FPSWorst:         NewEntryFPSWorst(),
		FrameTime:        NewEntryFrameTime(),
		FrameTimeWorst:   NewEntryFrameTimeWorst(),
		EntityCount:      NewEntryEntityCount(),
		CursorPosition:   NewEntryCursorPosition(),
		WindowResolution: NewEntryWindowResolution(),
	}
}

// Components returns the entries of the bundle.
func (b DefaultEntries) Components() []any {
	return []any{
		b.FPS, b.FPSWorst, b.FrameTime, b.FrameTimeWorst,
		b.EntityCount, b.CursorPosition, b.WindowResolution,
	}
}

// FramerateEntries groups the FPS and frame time entries.
type FramerateEntries struct {
	FPS            EntryFPS
	FPSWorst       EntryFPSWorst
	FrameTime      EntryFrameTime
	FrameTimeWorst EntryFrameTimeWorst
}

// NewFramerateEntries returns the FPS and frame time entries with defaults.
func NewFramerateEntries() FramerateEntries {
	return FramerateEntries{
		FPS:            NewEntryFPS(),
		FPSWorst:       NewEntryFPSWorst(),
		FrameTime:      NewEntryFrameTime(),
		FrameTimeWorst: NewEntryFrameTimeWorst(),
	}
}

// Components returns the entries of the bundle.
func (b FramerateEntries) Components() []any {
	return []any{b.FPS, b.FPSWorst, b.FrameTime, b.FrameTimeWorst}
}

// FixedTimeEntries groups the fixed-timestep entries.
type FixedTimeEntries struct {
	FixedTimestep EntryFixedTimestep
	FixedOverstep EntryFixedOverstep
}

// NewFixedTimeEntries returns the timestep and overstep entries.
func NewFixedTimeEntries() FixedTimeEntries {
	return FixedTimeEntries{
		FixedTimestep: NewEntryFixedTimestep(),
		FixedOverstep: NewEntryFixedOverstep(),
	}
}

// Components returns the entries of the bundle.
func (b FixedTimeEntries) Components() []any {
	return []any{b.FixedTimestep, b.FixedOverstep}
}

// WindowEntries groups the window and cursor entries.
type WindowEntries struct {
	CursorPosition    EntryCursorPosition
	WindowResolution  EntryWindowResolution
	WindowScaleFactor EntryWindowScaleFactor
	WindowMode        EntryWindowMode
	WindowPresentMode EntryWindowPresentMode
}

// NewWindowEntries returns the window and cursor entries.
func NewWindowEntries() WindowEntries {
	return WindowEntries{
		CursorPosition:    NewEntryCursorPosition(),
		WindowResolution:  NewEntryWindowResolution(),
		WindowScaleFactor: NewEntryWindowScaleFactor(),
		WindowMode:        NewEntryWindowMode(),
		WindowPresentMode: NewEntryWindowPresentMode(),
	}
}

// Components returns the entries of the bundle.
func (b WindowEntries) Components() []any {
	return []any{
		b.CursorPosition, b.WindowResolution, b.WindowScaleFactor, b.WindowMode, b.WindowPresentMode,
	}
}

// SystemEntries groups the process CPU and memory entries. Spawning them
// requires a Plugin built WithSystemInfo(true).
type SystemEntries struct {
	CPUUsage EntryCPUUsage
	MemUsage EntryMemUsage
}

// NewSystemEntries returns the CPU and memory usage entries.
func NewSystemEntries() SystemEntries {
	return SystemEntries{
		CPUUsage: NewEntryCPUUsage(),
		MemUsage: NewEntryMemUsage(),
	}
}

// Components returns the entries of the bundle.
func (b SystemEntries) Components() []any {
	return []any{b.CPUUsage, b.MemUsage}
}
