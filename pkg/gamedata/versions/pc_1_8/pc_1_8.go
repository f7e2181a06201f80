// Package pc_1_8 provides the vanilla Minecraft PC 1.8 game data.
package pc_1_8

import "github.com/go-theft-craft/shared-enchantments/pkg/gamedata"

// Version is the name this data set is registered under.
const Version = "pc-1.8"

func init() {
	gamedata.Register(Version, New)
}

// New builds a fresh GameData for PC 1.8.
func New() *gamedata.GameData {
	return &gamedata.GameData{
		Version:      Version,
		Items:        gamedata.NewItemRegistry(items),
		Enchantments: gamedata.NewEnchantmentRegistry(enchantments),
		Language:     gamedata.NewLanguageRegistry(language),
	}
}

var items = []gamedata.Item{
	{ID: gamedata.ItemBook, Name: "book", DisplayName: "Book", StackSize: 64},
	{ID: gamedata.ItemEnchantedBook, Name: "enchanted_book", DisplayName: "Enchanted Book", StackSize: 1},
}

var enchantments = []gamedata.Enchantment{
	{ID: 0, Name: "protection", DisplayName: "Protection", MaxLevel: 4, Category: "armor", Weight: 10,
		Exclude: []string{"blast_protection", "fire_protection", "projectile_protection"}, Tradeable: true, Discoverable: true},
	{ID: 1, Name: "fire_protection", DisplayName: "Fire Protection", MaxLevel: 4, Category: "armor", Weight: 5,
		Exclude: []string{"blast_protection", "protection", "projectile_protection"}, Tradeable: true, Discoverable: true},
	{ID: 2, Name: "feather_falling", DisplayName: "Feather Falling", MaxLevel: 4, Category: "armor_feet", Weight: 5, Tradeable: true, Discoverable: true},
	{ID: 3, Name: "blast_protection", DisplayName: "Blast Protection", MaxLevel: 4, Category: "armor", Weight: 2,
		Exclude: []string{"fire_protection", "protection", "projectile_protection"}, Tradeable: true, Discoverable: true},
	{ID: 4, Name: "projectile_protection", DisplayName: "Projectile Protection", MaxLevel: 4, Category: "armor", Weight: 5,
		Exclude: []string{"protection", "blast_protection", "fire_protection"}, Tradeable: true, Discoverable: true},
	{ID: 5, Name: "respiration", DisplayName: "Respiration", MaxLevel: 3, Category: "armor_head", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 6, Name: "aqua_affinity", DisplayName: "Aqua Affinity", MaxLevel: 1, Category: "armor_head", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 7, Name: "thorns", DisplayName: "Thorns", MaxLevel: 3, Category: "armor_chest", Weight: 1, Tradeable: true, Discoverable: true},
	{ID: 8, Name: "depth_strider", DisplayName: "Depth Strider", MaxLevel: 3, Category: "armor_feet", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 16, Name: "sharpness", DisplayName: "Sharpness", MaxLevel: 5, Category: "weapon", Weight: 10,
		Exclude: []string{"smite", "bane_of_arthropods"}, Tradeable: true, Discoverable: true},
	{ID: 17, Name: "smite", DisplayName: "Smite", MaxLevel: 5, Category: "weapon", Weight: 5,
		Exclude: []string{"sharpness", "bane_of_arthropods"}, Tradeable: true, Discoverable: true},
	{ID: 18, Name: "bane_of_arthropods", DisplayName: "Bane of Arthropods", MaxLevel: 5, Category: "weapon", Weight: 5,
		Exclude: []string{"smite", "sharpness"}, Tradeable: true, Discoverable: true},
	{ID: 19, Name: "knockback", DisplayName: "Knockback", MaxLevel: 2, Category: "weapon", Weight: 5, Tradeable: true, Discoverable: true},
	{ID: 20, Name: "fire_aspect", DisplayName: "Fire Aspect", MaxLevel: 2, Category: "weapon", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 21, Name: "looting", DisplayName: "Looting", MaxLevel: 3, Category: "weapon", Weight: 2,
		Exclude: []string{"silk_touch"}, Tradeable: true, Discoverable: true},
	{ID: 32, Name: "efficiency", DisplayName: "Efficiency", MaxLevel: 5, Category: "digger", Weight: 10, Tradeable: true, Discoverable: true},
	{ID: 33, Name: "silk_touch", DisplayName: "Silk Touch", MaxLevel: 1, Category: "digger", Weight: 1,
		Exclude: []string{"fortune", "looting"}, Tradeable: true, Discoverable: true},
	{ID: 34, Name: "unbreaking", DisplayName: "Unbreaking", MaxLevel: 3, Category: "breakable", Weight: 5, Tradeable: true, Discoverable: true},
	{ID: 35, Name: "fortune", DisplayName: "Fortune", MaxLevel: 3, Category: "digger", Weight: 2,
		Exclude: []string{"silk_touch"}, Tradeable: true, Discoverable: true},
	{ID: 48, Name: "power", DisplayName: "Power", MaxLevel: 5, Category: "bow", Weight: 10, Tradeable: true, Discoverable: true},
	{ID: 49, Name: "punch", DisplayName: "Punch", MaxLevel: 2, Category: "bow", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 50, Name: "flame", DisplayName: "Flame", MaxLevel: 1, Category: "bow", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 51, Name: "infinity", DisplayName: "Infinity", MaxLevel: 1, Category: "bow", Weight: 1, Tradeable: true, Discoverable: true},
	{ID: 61, Name: "luck_of_the_sea", DisplayName: "Luck of the Sea", MaxLevel: 3, Category: "fishing_rod", Weight: 2, Tradeable: true, Discoverable: true},
	{ID: 62, Name: "lure", DisplayName: "Lure", MaxLevel: 3, Category: "fishing_rod", Weight: 2, Tradeable: true, Discoverable: true},
}

var language = map[string]string{
	"item.enchantedBook.name": "Enchanted Book",
	"item.book.name":          "Book",
	"enchantment.level.1":     "I",
	"enchantment.level.2":     "II",
	"enchantment.level.3":     "III",
	"enchantment.level.4":     "IV",
	"enchantment.level.5":     "V",
	"enchantment.level.6":     "VI",
	"enchantment.level.7":     "VII",
	"enchantment.level.8":     "VIII",
	"enchantment.level.9":     "IX",
	"enchantment.level.10":    "X",
}
