package perfui

import (
	"reflect"

	"github.com/kamstrup/intmap"
	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/rs/zerolog"
)

// kind is one registered entry type, erased to what the collect system needs.
type kind struct {
	name    string
	typ     reflect.Type
	install func(s *ecs.Scheduler, sources *Sources)
}

// Plugin owns the entry registry and installs the overlay systems into a
// scheduler. The zero value is not usable; create one with NewPlugin.
type Plugin struct {
	// Root is attached to overlay entities spawned without one.
	Root Root

	log        zerolog.Logger
	systemInfo bool
	sampler    diagnostics.Sampler
	feeds      bool

	kinds  []*kind
	byType map[reflect.Type]int

	scheduler *ecs.Scheduler
	sources   Sources

	// archetype ID -> indices into kinds present in that archetype
	archetypeKinds *intmap.Map[uint32, []int]
	cachedKinds    int
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Plugin) { p.log = log }
}

// WithSystemInfo enables the process sampler that feeds the CPU and memory
// entries. Without it those entries show the placeholder.
func WithSystemInfo(enabled bool) Option {
	return func(p *Plugin) { p.systemInfo = enabled }
}

// WithSampler replaces the process sampler used when system info is enabled.
func WithSampler(sampler diagnostics.Sampler) Option {
	return func(p *Plugin) { p.sampler = sampler }
}

// WithRoot sets the Root attached to overlays spawned without one.
func WithRoot(root Root) Option {
	return func(p *Plugin) { p.Root = root }
}

// WithFeeds controls whether Build installs the time, frame time, entity count
// and system info collectors. Disable it when the host already runs them.
func WithFeeds(enabled bool) Option {
	return func(p *Plugin) { p.feeds = enabled }
}

// NewPlugin creates a plugin with every predefined entry registered.
func NewPlugin(opts ...Option) *Plugin {
	p := &Plugin{
		Root:           DefaultRoot(),
		log:            zerolog.Nop(),
		feeds:          true,
		byType:         make(map[reflect.Type]int),
		archetypeKinds: intmap.New[uint32, []int](32),
	}
	for _, opt := range opts {
		opt(p)
	}

	AddEntry[EntryFPS](p)
	AddEntry[EntryFrameTime](p)
	AddEntry[EntryFPSWorst](p)
	AddEntry[EntryFrameTimeWorst](p)
	AddEntry[EntryFrameCount](p)
	AddEntry[EntryEntityCount](p)
	AddEntry[EntryCPUUsage](p)
	AddEntry[EntryMemUsage](p)
	AddEntry[EntryClock](p)
	AddEntry[EntryRunningTime](p)
	AddEntry[EntryFixedTimestep](p)
	AddEntry[EntryFixedOverstep](p)
	AddEntry[EntryWindowResolution](p)
	AddEntry[EntryWindowScaleFactor](p)
	AddEntry[EntryWindowMode](p)
	AddEntry[EntryWindowPresentMode](p)
	AddEntry[EntryCursorPosition](p)

	return p
}

// AddEntry registers entry type T. Registering the same type twice has no
// effect. Types added after Build are installed into the built scheduler
// immediately; their update system then runs after the collect system, so
// their rows lag one frame.
func AddEntry[T any, PT interface {
	*T
	Entry
}](p *Plugin) {
	t := reflect.TypeFor[T]()
	if _, ok := p.byType[t]; ok {
		p.log.Debug().Str("entry", t.Name()).Msg("entry type already registered")
		return
	}

	k := &kind{
		name: t.Name(),
		typ:  t,
		install: func(s *ecs.Scheduler, sources *Sources) {
			ecs.RegisterComponent[T](s.Storage().Registry())
			s.Register(&updateSystem[T, PT]{sources: sources})
		},
	}
	p.byType[t] = len(p.kinds)
	p.kinds = append(p.kinds, k)
	p.log.Debug().Str("entry", k.name).Msg("registered entry type")

	if p.scheduler != nil {
		k.install(p.scheduler, &p.sources)
	}
}

// Build registers the overlay components and singletons with the scheduler's
// storage and installs, in order: the host feeds, the sources refresh, one
// update system per entry type, root attachment and panel collection.
func (p *Plugin) Build(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	registry := storage.Registry()
	ecs.RegisterComponent[Root](registry)
	ecs.RegisterComponent[Panel](registry)

	store := ecs.NewSingleton(storage, *diagnostics.NewStore()).Get()
	ecs.NewSingleton(storage, host.NewTime())
	ecs.NewSingleton(storage, host.NewFixedTime(0))

	if p.feeds {
		diagnostics.RegisterFrameTime(store)
		diagnostics.RegisterEntityCount(store)
		scheduler.Register(&host.TimeSystem{})
		scheduler.Register(&diagnostics.FrameTimeSystem{})
		scheduler.Register(&diagnostics.EntityCountSystem{})
		if p.systemInfo {
			p.buildSystemInfo(scheduler, store)
		}
	}

	scheduler.Register(&sourcesSystem{sources: &p.sources})
	for _, k := range p.kinds {
		k.install(scheduler, &p.sources)
	}
	scheduler.Register(&rootAttachSystem{plugin: p})
	scheduler.Register(&collectSystem{plugin: p})

	p.scheduler = scheduler
	p.log.Info().Int("entries", len(p.kinds)).Bool("system_info", p.systemInfo).Msg("perf overlay installed")
}

func (p *Plugin) buildSystemInfo(scheduler *ecs.Scheduler, store *diagnostics.Store) {
	sampler := p.sampler
	if sampler == nil {
		var err error
		if sampler, err = diagnostics.NewProcessSampler(); err != nil {
			p.log.Warn().Err(err).Msg("system info entries will show no value")
			return
		}
	}
	diagnostics.RegisterSystemInfo(store)
	scheduler.Register(diagnostics.NewSystemInfoSystem(sampler, diagnostics.DefaultSampleInterval, p.log))
}

// Kinds returns the names of the registered entry types in registration order.
func (p *Plugin) Kinds() []string {
	names := make([]string, len(p.kinds))
	for i, k := range p.kinds {
		names[i] = k.name
	}
	return names
}

// Entries returns every registered entry attached to id, in registration order.
func (p *Plugin) Entries(storage *ecs.Storage, id ecs.EntityId) []Entry {
	var entries []Entry
	for _, k := range p.kinds {
		if entry, ok := storage.GetComponent(id, k.typ).(Entry); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// kindsOf returns the indices of the registered kinds present in an archetype.
// has reports whether the archetype carries a component type.
func (p *Plugin) kindsOf(archetypeID uint32, has func(reflect.Type) bool) []int {
	if p.cachedKinds != len(p.kinds) {
		p.archetypeKinds.Clear()
		p.cachedKinds = len(p.kinds)
	}
	if indices, ok := p.archetypeKinds.Get(archetypeID); ok {
		return indices
	}

	var indices []int
	for i, k := range p.kinds {
		if has(k.typ) {
			indices = append(indices, i)
		}
	}
	p.archetypeKinds.Put(archetypeID, indices)
	return indices
}
