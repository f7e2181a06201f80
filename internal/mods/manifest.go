// Package mods loads contributor mod manifests and answers which mods are
// present.
package mods

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-craft/shared-enchantments/internal/enchantgroup"
)

// ManifestExt is the file extension LoadDir picks up.
const ManifestExt = ".toml"

var (
	ErrInvalidManifest = errors.New("invalid mod manifest")
	ErrDuplicateMod    = errors.New("duplicate mod id")
)

// Mod describes one loaded mod and the enchantments it contributes.
type Mod struct {
	ID           string            `toml:"id"`
	Name         string            `toml:"name"`
	Version      string            `toml:"version"`
	Enchantments []EnchantmentDecl `toml:"enchantments"`

	// Path is the manifest file the mod was read from.
	Path string `toml:"-"`
}

// EnchantmentDecl is a manifest line asking for an enchantment to be shown
// in the shared group.
type EnchantmentDecl struct {
	ID       string `toml:"id"`
	MaxLevel int    `toml:"max_level"`
}

// Entries converts the declarations into registry entries.
func (m Mod) Entries() []enchantgroup.Entry {
	entries := make([]enchantgroup.Entry, len(m.Enchantments))
	for i, d := range m.Enchantments {
		entries[i] = enchantgroup.Entry{Enchantment: d.ID, MaxLevel: d.MaxLevel}
	}
	return entries
}

// ParseManifest decodes a TOML manifest. Unknown keys are rejected.
func ParseManifest(r io.Reader) (Mod, error) {
	var m Mod
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Mod{}, fmt.Errorf("%w: %s", ErrInvalidManifest, strict.String())
		}
		return Mod{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	m.ID = strings.TrimSpace(m.ID)
	if m.ID == "" {
		return Mod{}, fmt.Errorf("%w: missing id", ErrInvalidManifest)
	}
	return m, nil
}

// LoadDir reads every manifest in dir. A missing directory yields an empty
// set.
func LoadDir(dir string) (*Set, error) {
	set := NewSet()
	des, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, fmt.Errorf("read mods dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(des))
	for _, de := range des {
		if de.IsDir() || filepath.Ext(de.Name()) != ManifestExt {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		m, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := set.Add(m); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return set, nil
}

func loadFile(path string) (Mod, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mod{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return Mod{}, fmt.Errorf("load %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}
