// Package region keeps the named rectangles where the overlay should accept
// pointer input.
package region

import (
	"sort"
	"sync"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/win32"
)

// Set is a concurrency-safe collection of named hot regions
type Set struct {
	mu      sync.RWMutex
	regions map[string]win32.Rect
}

// New creates an empty set
func New() *Set {
	return &Set{regions: make(map[string]win32.Rect)}
}

// FromConfig builds a set from persisted regions
func FromConfig(regions []config.RegionConfig) *Set {
	s := New()
	s.ReplaceConfig(regions)
	return s
}

// Put adds or replaces a region
func (s *Set) Put(name string, rect win32.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[name] = rect
}

// Delete removes a region; missing names are ignored
func (s *Set) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regions, name)
}

// Replace swaps the whole set in one step
func (s *Set) Replace(regions map[string]win32.Rect) {
	next := make(map[string]win32.Rect, len(regions))
	for name, r := range regions {
		next[name] = r
	}

	s.mu.Lock()
	s.regions = next
	s.mu.Unlock()
}

// ReplaceConfig swaps the set for persisted regions; later duplicates of a
// name win
func (s *Set) ReplaceConfig(regions []config.RegionConfig) {
	next := make(map[string]win32.Rect, len(regions))
	for _, r := range regions {
		next[r.Name] = win32.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	}

	s.mu.Lock()
	s.regions = next
	s.mu.Unlock()
}

// Clear removes all regions
func (s *Set) Clear() {
	s.Replace(nil)
}

// Contains reports whether p lies inside any region. Its method value can be
// registered directly as a focus handler.
func (s *Set) Contains(p engine.Point) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.regions {
		if r.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// Len returns the number of regions
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions)
}

// Names returns region names in sorted order
func (s *Set) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.regions))
	for name := range s.regions {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Config returns the regions in persisted form, sorted by name
func (s *Set) Config() []config.RegionConfig {
	names := s.Names()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]config.RegionConfig, 0, len(names))
	for _, name := range names {
		r, ok := s.regions[name]
		if !ok {
			continue
		}
		out = append(out, config.RegionConfig{
			Name:   name,
			Left:   r.Left,
			Top:    r.Top,
			Right:  r.Right,
			Bottom: r.Bottom,
		})
	}
	return out
}
