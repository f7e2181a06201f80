package gamedata

import "strings"

// Enchantment is one entry of the enchantment catalog.
type Enchantment struct {
	ID          int
	Name        string
	DisplayName string
	MaxLevel    int
	// Exclude lists enchantments that cannot share an item with this one.
	Exclude      []string
	Category     string
	Weight       int
	TreasureOnly bool
	Curse        bool
	Tradeable    bool
	Discoverable bool
}

// ResourceName returns the namespaced name, e.g. "minecraft:sharpness".
func (e Enchantment) ResourceName() string {
	if strings.Contains(e.Name, ":") {
		return e.Name
	}
	return DefaultNamespace + ":" + e.Name
}
