package gamedata

// GameData bundles the registries of one game version.
type GameData struct {
	Version      string
	Items        ItemRegistry
	Enchantments EnchantmentRegistry
	Language     LanguageRegistry
}
