package gamedata

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownVersion is returned by Load for versions nobody registered.
var ErrUnknownVersion = errors.New("unknown version")

var (
	versionsMu sync.RWMutex
	versions   = map[string]func() *GameData{}
)

// Register makes a game data factory available under name. Version packages
// call it from init.
func Register(name string, factory func() *GameData) {
	versionsMu.Lock()
	defer versionsMu.Unlock()
	versions[name] = factory
}

// Load builds the game data registered under name. The error for an
// unregistered name lists the known ones.
func Load(name string) (*GameData, error) {
	versionsMu.RLock()
	f, ok := versions[name]
	versionsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownVersion, name, strings.Join(RegisteredVersions(), ", "))
	}
	return f(), nil
}

// RegisteredVersions lists the known version names in sorted order.
func RegisteredVersions() []string {
	versionsMu.RLock()
	defer versionsMu.RUnlock()
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
