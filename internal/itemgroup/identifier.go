package itemgroup

import (
	"fmt"
	"strings"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
)

// Identifier is a namespaced resource name such as
// "murkys-many-apis:shared_enchantments".
type Identifier struct {
	Namespace string
	Path      string
}

// ID builds an Identifier from its parts.
func ID(namespace, path string) Identifier {
	return Identifier{Namespace: namespace, Path: path}
}

// ParseIdentifier parses "namespace:path". A bare path gets the default
// namespace.
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = gamedata.DefaultNamespace, s
	}
	id := Identifier{Namespace: ns, Path: path}
	if err := id.validate(); err != nil {
		return Identifier{}, fmt.Errorf("parse identifier %q: %w", s, err)
	}
	return id, nil
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

func (id Identifier) validate() error {
	if id.Namespace == "" || id.Path == "" {
		return fmt.Errorf("%w: empty namespace or path", ErrInvalidGroup)
	}
	for _, r := range id.Namespace {
		if !validNamespaceRune(r) {
			return fmt.Errorf("%w: invalid character %q in namespace", ErrInvalidGroup, r)
		}
	}
	for _, r := range id.Path {
		if !validNamespaceRune(r) && r != '/' {
			return fmt.Errorf("%w: invalid character %q in path", ErrInvalidGroup, r)
		}
	}
	return nil
}

func validNamespaceRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '.'
}
