package gamedata

// EnchantmentRegistry answers lookups against the live enchantment catalog.
type EnchantmentRegistry interface {
	ByID(id int) (Enchantment, bool)
	ByName(name string) (Enchantment, bool)
	All() []Enchantment
}

type ItemRegistry interface {
	ByID(id int) (Item, bool)
	ByName(name string) (Item, bool)
	All() []Item
}

type LanguageRegistry interface {
	Get(key string) (string, bool)
	All() map[string]string
}
