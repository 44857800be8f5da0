// Package diagnostics is the per-frame measurement store the overlay reads from.
// Each measurement stream is a Diagnostic identified by a stable Path and keeps a
// bounded history plus an exponentially smoothed value.
package diagnostics

import "strings"

// Path identifies a diagnostic. Paths are slash separated, e.g. "process/cpu_usage".
type Path string

// Well-known paths produced by the collector systems in this package.
const (
	FPS             Path = "fps"
	FrameTime       Path = "frame_time"
	FrameCount      Path = "frame_count"
	EntityCount     Path = "entity_count"
	ProcessCPUUsage Path = "process/cpu_usage"
	ProcessMemUsage Path = "process/mem_usage"
)

// NewPath validates p and returns it as a Path. It panics on an empty path or
// an empty segment ("a//b", "/a", "a/").
func NewPath(p string) Path {
	if p == "" {
		panic("diagnostic path cannot be empty")
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == "" {
			panic("diagnostic path " + p + " has an empty segment")
		}
	}
	return Path(p)
}

// Segments returns the slash separated parts of the path.
func (p Path) Segments() []string {
	return strings.Split(string(p), "/")
}

func (p Path) String() string {
	return string(p)
}
