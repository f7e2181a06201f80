package enchantgroup

import (
	"testing"

	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
)

func TestDisplayItem_Slot(t *testing.T) {
	item := DisplayItem{
		Contributor: "alpha-mod",
		Enchantment: gamedata.Enchantment{ID: 16, Name: "sharpness"},
		Level:       4,
	}

	s := item.Slot()
	if s.ItemID != gamedata.ItemEnchantedBook || s.Count != 1 || s.Damage != 0 {
		t.Fatalf("unexpected slot header: %+v", s)
	}

	tag, err := s.Tag()
	if err != nil {
		t.Fatalf("decode tag: %v", err)
	}
	stored, ok := tag["StoredEnchantments"].([]any)
	if !ok || len(stored) != 1 {
		t.Fatalf("expected one stored enchantment, got %#v", tag["StoredEnchantments"])
	}
	ench := stored[0].(nbt.Compound)
	if ench["id"] != int16(16) {
		t.Errorf("expected id 16, got %v", ench["id"])
	}
	if ench["lvl"] != int16(4) {
		t.Errorf("expected lvl 4, got %v", ench["lvl"])
	}
}

func TestDisplayItem_Label(t *testing.T) {
	lang := gamedata.NewLanguageRegistry(map[string]string{"enchantment.level.3": "III"})
	ench := gamedata.Enchantment{ID: 34, Name: "unbreaking", DisplayName: "Unbreaking"}

	tests := []struct {
		level int
		lang  gamedata.LanguageRegistry
		want  string
	}{
		{3, lang, "Unbreaking III"},
		{12, lang, "Unbreaking 12"},
		{3, nil, "Unbreaking 3"},
	}
	for _, tt := range tests {
		got := DisplayItem{Enchantment: ench, Level: tt.level}.Label(tt.lang)
		if got != tt.want {
			t.Errorf("Label(level=%d) = %q, want %q", tt.level, got, tt.want)
		}
	}

	noDisplay := DisplayItem{Enchantment: gamedata.Enchantment{Name: "fishmod:reeling"}, Level: 3}
	if got := noDisplay.Label(lang); got != "fishmod:reeling III" {
		t.Errorf("expected fallback to registry name, got %q", got)
	}
}
