// Package enchantgroup implements the shared enchantment registry: an
// allow-listed set of contributors, each owning a list of enchantments to
// show as enchanted books in one shared item group.
package enchantgroup

import (
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
)

// ModLookup reports whether a mod with the given ID is currently loaded.
// It only changes the wording of rejection warnings.
type ModLookup interface {
	IsLoaded(id string) bool
}

// MaxLevelLimit is the highest level an entry may ask for; stored
// enchantment levels are NBT shorts.
const MaxLevelLimit = math.MaxInt16

// Options configures a Registry.
type Options struct {
	// AllowList holds the contributor IDs permitted to register.
	AllowList []string
	// Mods answers whether a rejected contributor is a loaded mod. May be nil.
	Mods ModLookup
	Log  *slog.Logger
}

// Registry holds the registrations of all contributors. Construct one with
// New at startup and share the pointer; it is safe for concurrent use.
type Registry struct {
	allowed map[string]struct{}
	mods    ModLookup
	log     *slog.Logger

	mu      sync.RWMutex
	entries map[string][]Entry
}

// New creates an empty Registry that accepts only contributors in
// opts.AllowList.
func New(opts Options) *Registry {
	allowed := make(map[string]struct{}, len(opts.AllowList))
	for _, id := range opts.AllowList {
		allowed[id] = struct{}{}
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		allowed: allowed,
		mods:    opts.Mods,
		log:     log,
		entries: make(map[string][]Entry),
	}
}

// Allowed reports whether contributor is on the allow-list.
func (r *Registry) Allowed(contributor string) bool {
	_, ok := r.allowed[contributor]
	return ok
}

// Register replaces the entry list of contributor. It returns false, and
// leaves the registry untouched, when the contributor is not allow-listed
// or an entry is malformed (empty enchantment, or MaxLevel outside
// 1..MaxLevelLimit).
func (r *Registry) Register(contributor string, entries []Entry) bool {
	if !r.Allowed(contributor) {
		if r.mods == nil || !r.mods.IsLoaded(contributor) {
			r.log.Warn("unknown mod attempted to register enchantments", "mod", contributor)
		} else {
			r.log.Warn("unauthorized mod attempted to register enchantments", "mod", contributor)
		}
		return false
	}

	for i, e := range entries {
		if e.Enchantment == "" || e.MaxLevel < 1 || e.MaxLevel > MaxLevelLimit {
			r.log.Warn("rejected enchantment registration with invalid entry",
				"mod", contributor,
				"index", i,
				"enchantment", e.Enchantment,
				"maxLevel", e.MaxLevel,
			)
			return false
		}
	}

	stored := make([]Entry, len(entries))
	copy(stored, entries)

	r.mu.Lock()
	r.entries[contributor] = stored
	r.mu.Unlock()

	r.log.Info("registered enchantments", "mod", contributor, "count", len(stored))
	return true
}

// Unregister drops the registration of contributor, reporting whether one
// existed.
func (r *Registry) Unregister(contributor string) bool {
	r.mu.Lock()
	_, ok := r.entries[contributor]
	delete(r.entries, contributor)
	r.mu.Unlock()

	if ok {
		r.log.Info("unregistered enchantments", "mod", contributor)
	}
	return ok
}

// Contributors returns a snapshot of every registration, sorted by
// contributor ID.
func (r *Registry) Contributors() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(r.entries))
	for _, id := range r.sortedIDs() {
		entries := make([]Entry, len(r.entries[id]))
		copy(entries, r.entries[id])
		out = append(out, Registration{Contributor: id, Entries: entries})
	}
	return out
}

// Enumerate builds the display items of the shared group. Each entry whose
// enchantment resolves in catalog yields one book per level, 1 through
// MaxLevel; entries that do not resolve are skipped, since they usually
// belong to content that is not loaded. Contributors are visited in a
// stable order but callers should not depend on which one. A nil catalog
// resolves nothing.
func (r *Registry) Enumerate(catalog gamedata.EnchantmentRegistry) []DisplayItem {
	if catalog == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []DisplayItem
	for _, id := range r.sortedIDs() {
		for _, e := range r.entries[id] {
			ench, ok := catalog.ByName(e.Enchantment)
			if !ok {
				continue
			}
			for level := 1; level <= e.MaxLevel; level++ {
				items = append(items, DisplayItem{
					Contributor: id,
					Enchantment: ench,
					Level:       level,
				})
			}
		}
	}
	return items
}

// sortedIDs must be called with r.mu held.
func (r *Registry) sortedIDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
