package export

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-craft/shared-enchantments/internal/enchantgroup"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

func sampleItems() []enchantgroup.DisplayItem {
	lure := gamedata.Enchantment{ID: 62, Name: "lure", DisplayName: "Lure"}
	return []enchantgroup.DisplayItem{
		{Contributor: "murkys-many-fish", Enchantment: lure, Level: 1},
		{Contributor: "murkys-many-fish", Enchantment: lure, Level: 2},
	}
}

func TestWriteNBT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.dat")
	if err := WriteNBT(path, sampleItems()); err != nil {
		t.Fatalf("WriteNBT: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	_, root, err := nbt.Read(zr)
	if err != nil {
		t.Fatalf("nbt.Read: %v", err)
	}

	list, ok := root["Items"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2 items, got %#v", root["Items"])
	}
	second := list[1].(nbt.Compound)
	if second["id"] != int16(gamedata.ItemEnchantedBook) || second["Count"] != int8(1) {
		t.Fatalf("unexpected item header: %#v", second)
	}
	stored := second["tag"].(nbt.Compound)["StoredEnchantments"].([]any)
	ench := stored[0].(nbt.Compound)
	if ench["id"] != int16(62) || ench["lvl"] != int16(2) {
		t.Fatalf("unexpected stored enchantment: %#v", ench)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestEncodeNBT_Empty(t *testing.T) {
	data, err := EncodeNBT(nil)
	if err != nil {
		t.Fatalf("EncodeNBT: %v", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	_, root, err := nbt.Read(zr)
	if err != nil {
		t.Fatalf("nbt.Read: %v", err)
	}
	if list := root["Items"].([]any); len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestEncodeNBT_MoreItemsThanAByte(t *testing.T) {
	lure := gamedata.Enchantment{ID: 62, Name: "lure"}
	items := make([]enchantgroup.DisplayItem, 300)
	for i := range items {
		items[i] = enchantgroup.DisplayItem{Contributor: "murkys-many-fish", Enchantment: lure, Level: i + 1}
	}

	data, err := EncodeNBT(items)
	if err != nil {
		t.Fatalf("EncodeNBT: %v", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	_, root, err := nbt.Read(zr)
	if err != nil {
		t.Fatalf("nbt.Read: %v", err)
	}

	list := root["Items"].([]any)
	if len(list) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(list))
	}
	for i, v := range list {
		c := v.(nbt.Compound)
		if _, ok := c["Slot"]; ok {
			t.Fatalf("item %d carries a Slot index: %#v", i, c)
		}
		lvl := c["tag"].(nbt.Compound)["StoredEnchantments"].([]any)[0].(nbt.Compound)["lvl"]
		if lvl != int16(i+1) {
			t.Fatalf("item %d: expected lvl %d, got %v", i, i+1, lvl)
		}
	}
}

func TestWriteSlots_ReadsBack(t *testing.T) {
	items := sampleItems()
	slots := []protocol.Slot{items[0].Slot(), protocol.EmptySlot, items[1].Slot()}

	path := filepath.Join(t.TempDir(), "shared.slots")
	if err := WriteSlots(path, slots); err != nil {
		t.Fatalf("WriteSlots: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, err := ReadSlots(f)
	if err != nil {
		t.Fatalf("ReadSlots: %v", err)
	}
	if diff := cmp.Diff(slots, got); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSlots_Truncated(t *testing.T) {
	data, err := EncodeSlots([]protocol.Slot{sampleItems()[0].Slot()})
	if err != nil {
		t.Fatalf("EncodeSlots: %v", err)
	}
	if _, err := ReadSlots(bytes.NewReader(data[:3])); err == nil {
		t.Fatal("expected error for a truncated slot")
	}
}

func TestReadSlots_Empty(t *testing.T) {
	got, err := ReadSlots(bytes.NewReader(nil))
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no slots and no error, got %v, %v", got, err)
	}
}

func TestWriteJSON(t *testing.T) {
	lang := gamedata.NewLanguageRegistry(map[string]string{"enchantment.level.2": "II"})
	l := NewListing("murkys-many-apis:shared_enchantments", "Shared Enchantments", sampleItems(), lang)

	path := filepath.Join(t.TempDir(), "shared.json")
	if err := WriteJSON(path, l); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got Listing
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []ItemRecord{
		{Contributor: "murkys-many-fish", Enchantment: "minecraft:lure", EnchantmentID: 62, Level: 1, Label: "Lure 1"},
		{Contributor: "murkys-many-fish", Enchantment: "minecraft:lure", EnchantmentID: 62, Level: 2, Label: "Lure II"},
	}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if got.Group != "murkys-many-apis:shared_enchantments" {
		t.Errorf("group = %q", got.Group)
	}
}

func TestWriteJSON_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "shared.json")
	if err := WriteJSON(path, &Listing{}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
