package diagnostics

import (
	"errors"
	"time"

	"github.com/plus3/perfui/ecs"
	"github.com/rs/zerolog"
)

// ErrSamplerUnsupported is returned by NewProcessSampler on platforms without a
// process sampler.
var ErrSamplerUnsupported = errors.New("diagnostics: process sampling is not supported on this platform")

// DefaultSampleInterval is how often SystemInfoSystem polls its sampler.
const DefaultSampleInterval = time.Second

// Sample is one reading of process resource usage.
type Sample struct {
	// CPUPercent is the share of total machine CPU time used since the
	// previous sample. Only meaningful when HasCPU is set.
	CPUPercent float64
	HasCPU     bool
	// MemoryMiB is the resident set size.
	MemoryMiB float64
}

// Sampler reads process resource usage.
type Sampler interface {
	Sample() (Sample, error)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() (Sample, error)

func (f SamplerFunc) Sample() (Sample, error) {
	return f()
}

// RegisterSystemInfo registers the paths written by SystemInfoSystem.
func RegisterSystemInfo(store *Store) {
	store.Register(New(ProcessCPUUsage).WithSuffix("%"))
	store.Register(New(ProcessMemUsage).WithSuffix("MiB"))
}

// SystemInfoSystem polls a Sampler at a fixed wall-clock interval and records
// process CPU and memory usage.
type SystemInfoSystem struct {
	Store ecs.Singleton[Store]

	sampler  Sampler
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
	last     time.Time
	failing  bool
}

// NewSystemInfoSystem creates a collector around sampler. A non-positive
// interval means DefaultSampleInterval.
func NewSystemInfoSystem(sampler Sampler, interval time.Duration, log zerolog.Logger) *SystemInfoSystem {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &SystemInfoSystem{
		sampler:  sampler,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// Execute samples the process once Interval has passed since the last sample.
func (s *SystemInfoSystem) Execute(frame *ecs.UpdateFrame) {
	store := s.Store.Get()
	if store == nil || s.sampler == nil {
		return
	}

	now := s.now()
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return
	}
	s.last = now

	sample, err := s.sampler.Sample()
	if err != nil {
		// Logged once per failure streak.
		if !s.failing {
			s.log.Warn().Err(err).Msg("process sampling failed")
		}
		s.failing = true
		return
	}
	s.failing = false

	if sample.HasCPU {
		store.Add(ProcessCPUUsage, sample.CPUPercent)
	}
	store.Add(ProcessMemUsage, sample.MemoryMiB)
}
