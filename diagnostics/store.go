package diagnostics

import (
	"maps"
	"slices"
)

// Store holds every registered Diagnostic. It is kept as an ECS singleton; the
// zero value is ready to use.
type Store struct {
	diagnostics map[Path]*Diagnostic
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{diagnostics: make(map[Path]*Diagnostic)}
}

// Register adds d to the store. If a diagnostic with the same path already
// exists it is kept and returned instead, so collectors may register eagerly.
func (s *Store) Register(d *Diagnostic) *Diagnostic {
	if s.diagnostics == nil {
		s.diagnostics = make(map[Path]*Diagnostic)
	}
	if existing, ok := s.diagnostics[d.Path]; ok {
		return existing
	}
	s.diagnostics[d.Path] = d
	return d
}

// Get returns the diagnostic registered under path.
func (s *Store) Get(path Path) (*Diagnostic, bool) {
	d, ok := s.diagnostics[path]
	return d, ok
}

// Add records value under path. Unknown or disabled paths are ignored.
func (s *Store) Add(path Path, value float64) {
	d, ok := s.diagnostics[path]
	if !ok || !d.Enabled {
		return
	}
	d.Add(value)
}

// SetEnabled toggles recording for path. It returns false if path is unknown.
func (s *Store) SetEnabled(path Path, enabled bool) bool {
	d, ok := s.diagnostics[path]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// Paths returns every registered path in sorted order.
func (s *Store) Paths() []Path {
	return slices.Sorted(maps.Keys(s.diagnostics))
}

// Value returns the latest value recorded under path.
func (s *Store) Value(path Path) (float64, bool) {
	if d, ok := s.diagnostics[path]; ok {
		return d.Value()
	}
	return 0, false
}

// Smoothed returns the smoothed value recorded under path.
func (s *Store) Smoothed(path Path) (float64, bool) {
	if d, ok := s.diagnostics[path]; ok {
		return d.Smoothed()
	}
	return 0, false
}
