package mods

import (
	"fmt"
	"sort"
	"sync"
)

// Set is the collection of loaded mods.
type Set struct {
	mu   sync.RWMutex
	mods map[string]Mod
}

// NewSet creates a Set holding mods. Duplicate IDs keep the last one.
func NewSet(mods ...Mod) *Set {
	s := &Set{mods: make(map[string]Mod, len(mods))}
	for _, m := range mods {
		s.mods[m.ID] = m
	}
	return s
}

// Add inserts m, failing if a mod with the same ID is already present.
func (s *Set) Add(m Mod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.mods[m.ID]; ok {
		return fmt.Errorf("%w: %s (already loaded from %s)", ErrDuplicateMod, m.ID, prev.Path)
	}
	s.mods[m.ID] = m
	return nil
}

// IsLoaded reports whether a mod with the given ID is in the set.
func (s *Set) IsLoaded(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.mods[id]
	return ok
}

// Get returns the mod with the given ID.
func (s *Set) Get(id string) (Mod, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mods[id]
	return m, ok
}

// Version returns the declared version of a mod.
func (s *Set) Version(id string) (string, bool) {
	m, ok := s.Get(id)
	if !ok || m.Version == "" {
		return "", false
	}
	return m.Version, true
}

// All returns the mods sorted by ID.
func (s *Set) All() []Mod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Mod, 0, len(s.mods))
	for _, m := range s.mods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of mods.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mods)
}
