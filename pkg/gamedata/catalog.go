package gamedata

import (
	"sort"
	"strings"
)

// DefaultNamespace is assumed for names that carry no namespace prefix.
const DefaultNamespace = "minecraft"

// TrimNamespace strips the default namespace from a resource name.
// Names from other namespaces are returned unchanged.
func TrimNamespace(name string) string {
	return strings.TrimPrefix(name, DefaultNamespace+":")
}

type enchantmentRegistry struct {
	byID   map[int]Enchantment
	byName map[string]Enchantment
	all    []Enchantment
}

// NewEnchantmentRegistry builds an in-memory EnchantmentRegistry. Later
// entries with a duplicate ID or name win.
func NewEnchantmentRegistry(list []Enchantment) EnchantmentRegistry {
	r := &enchantmentRegistry{
		byID:   make(map[int]Enchantment, len(list)),
		byName: make(map[string]Enchantment, len(list)),
	}
	for _, e := range list {
		r.byID[e.ID] = e
		r.byName[TrimNamespace(e.Name)] = e
	}
	r.all = make([]Enchantment, 0, len(r.byID))
	for _, e := range r.byID {
		r.all = append(r.all, e)
	}
	sort.Slice(r.all, func(i, j int) bool { return r.all[i].ID < r.all[j].ID })
	return r
}

func (r *enchantmentRegistry) ByID(id int) (Enchantment, bool) {
	e, ok := r.byID[id]
	return e, ok
}

func (r *enchantmentRegistry) ByName(name string) (Enchantment, bool) {
	e, ok := r.byName[TrimNamespace(name)]
	return e, ok
}

func (r *enchantmentRegistry) All() []Enchantment {
	out := make([]Enchantment, len(r.all))
	copy(out, r.all)
	return out
}

type itemRegistry struct {
	byID   map[int]Item
	byName map[string]Item
	all    []Item
}

// NewItemRegistry builds an in-memory ItemRegistry.
func NewItemRegistry(list []Item) ItemRegistry {
	r := &itemRegistry{
		byID:   make(map[int]Item, len(list)),
		byName: make(map[string]Item, len(list)),
		all:    append([]Item(nil), list...),
	}
	for _, it := range list {
		r.byID[it.ID] = it
		r.byName[TrimNamespace(it.Name)] = it
	}
	sort.Slice(r.all, func(i, j int) bool { return r.all[i].ID < r.all[j].ID })
	return r
}

func (r *itemRegistry) ByID(id int) (Item, bool) {
	it, ok := r.byID[id]
	return it, ok
}

func (r *itemRegistry) ByName(name string) (Item, bool) {
	it, ok := r.byName[TrimNamespace(name)]
	return it, ok
}

func (r *itemRegistry) All() []Item {
	out := make([]Item, len(r.all))
	copy(out, r.all)
	return out
}

type languageRegistry map[string]string

// NewLanguageRegistry wraps a translation table.
func NewLanguageRegistry(entries map[string]string) LanguageRegistry {
	l := make(languageRegistry, len(entries))
	for k, v := range entries {
		l[k] = v
	}
	return l
}

func (l languageRegistry) Get(key string) (string, bool) {
	v, ok := l[key]
	return v, ok
}

func (l languageRegistry) All() map[string]string {
	out := make(map[string]string, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
