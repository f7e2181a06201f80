// Package itemgroup models the creative item groups items are listed in.
package itemgroup

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

var (
	ErrInvalidGroup   = errors.New("invalid item group")
	ErrDuplicateGroup = errors.New("duplicate item group")
	ErrUnknownGroup   = errors.New("unknown item group")
)

// DisplayContext carries what a group needs to compute its contents.
type DisplayContext struct {
	Catalog gamedata.EnchantmentRegistry
}

// EntriesFunc produces the current contents of a group. It is called on
// every population; results are not cached.
type EntriesFunc func(ctx DisplayContext) []protocol.Slot

// Group is one item group.
type Group struct {
	ID Identifier
	// Icon is the stack drawn on the group's tab.
	Icon protocol.Slot
	// DisplayName is a translation key.
	DisplayName string
	Entries     EntriesFunc
}

// Registry holds the registered item groups.
type Registry struct {
	mu     sync.RWMutex
	groups map[Identifier]Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[Identifier]Group)}
}

// Register adds g. Group IDs are unique.
func (r *Registry) Register(g Group) error {
	if err := g.ID.validate(); err != nil {
		return fmt.Errorf("register group %s: %w", g.ID, err)
	}
	if g.Entries == nil {
		return fmt.Errorf("register group %s: %w: no entries function", g.ID, ErrInvalidGroup)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[g.ID]; ok {
		return fmt.Errorf("register group %s: %w", g.ID, ErrDuplicateGroup)
	}
	r.groups[g.ID] = g
	return nil
}

// ByID looks up a group.
func (r *Registry) ByID(id Identifier) (Group, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[id]
	return g, ok
}

// All returns the groups sorted by ID.
func (r *Registry) All() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// Populate computes the contents of the group with the given ID.
func (r *Registry) Populate(id Identifier, ctx DisplayContext) ([]protocol.Slot, error) {
	g, ok := r.ByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, id)
	}
	return g.Entries(ctx), nil
}

// Title resolves the group's display name, falling back to the key itself.
func (g Group) Title(lang gamedata.LanguageRegistry) string {
	if lang != nil {
		if v, ok := lang.Get(g.DisplayName); ok {
			return v
		}
	}
	return g.DisplayName
}
