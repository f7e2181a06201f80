package enchantgroup

import (
	"bytes"
	"strconv"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

// Entry declares one enchantment a contributor wants shown, at levels
// 1 through MaxLevel. Enchantment is resolved against the catalog only at
// enumeration time.
type Entry struct {
	Enchantment string
	MaxLevel    int
}

// Registration is the current entry list of one contributor.
type Registration struct {
	Contributor string
	Entries     []Entry
}

// DisplayItem is an enchanted book carrying a single stored enchantment.
type DisplayItem struct {
	Contributor string
	Enchantment gamedata.Enchantment
	Level       int
}

// Slot encodes the item as an enchanted book stack with a
// StoredEnchantments tag.
func (d DisplayItem) Slot() protocol.Slot {
	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)
	w.BeginCompound("")
	w.BeginList("StoredEnchantments", nbt.TagCompound, 1)
	w.BeginListCompound()
	w.WriteShort("id", int16(d.Enchantment.ID))
	w.WriteShort("lvl", int16(d.Level))
	w.EndCompound()
	w.EndCompound()

	return protocol.Slot{
		ItemID: gamedata.ItemEnchantedBook,
		Count:  1,
		NBT:    buf.Bytes(),
	}
}

// Label renders the item name the way the client tooltip does, e.g.
// "Sharpness III". Levels without a translation fall back to digits.
func (d DisplayItem) Label(lang gamedata.LanguageRegistry) string {
	name := d.Enchantment.DisplayName
	if name == "" {
		name = d.Enchantment.Name
	}
	if lang != nil {
		if numeral, ok := lang.Get("enchantment.level." + strconv.Itoa(d.Level)); ok {
			return name + " " + numeral
		}
	}
	return name + " " + strconv.Itoa(d.Level)
}
