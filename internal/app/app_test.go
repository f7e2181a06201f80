package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-craft/shared-enchantments/internal/config"
	"github.com/go-theft-craft/shared-enchantments/internal/mods"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
)

func newTestApp(t *testing.T, set *mods.Set) (*App, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cfg := config.DefaultConfig()
	a, err := NewWithData(cfg, slog.New(slog.NewTextHandler(&logs, nil)), mustLoad(t), set)
	if err != nil {
		t.Fatalf("NewWithData: %v", err)
	}
	return a, &logs
}

func mustLoad(t *testing.T) *gamedata.GameData {
	t.Helper()
	gd, err := gamedata.Load("pc-1.8")
	if err != nil {
		t.Fatalf("load pc-1.8: %v", err)
	}
	return gd
}

func fishMod() mods.Mod {
	return mods.Mod{
		ID:      "murkys-many-fish",
		Version: "1.4.2",
		Enchantments: []mods.EnchantmentDecl{
			{ID: "luck_of_the_sea", MaxLevel: 3},
			{ID: "murkys-many-fish:reeling", MaxLevel: 2},
			{ID: "minecraft:lure", MaxLevel: 3},
		},
	}
}

func TestInitialize_RegistersAllowListedMods(t *testing.T) {
	set := mods.NewSet(
		fishMod(),
		mods.Mod{ID: "murkys-many-apis", Version: "2.0.0"},
		mods.Mod{ID: "rogue-mod", Enchantments: []mods.EnchantmentDecl{{ID: "sharpness", MaxLevel: 5}}},
	)
	a, logs := newTestApp(t, set)

	rejected, err := a.Initialize()
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if diff := cmp.Diff([]string{"rogue-mod"}, rejected); diff != "" {
		t.Errorf("rejected mismatch (-want +got):\n%s", diff)
	}

	items := a.Items()
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label(a.Language()))
	}
	want := []string{
		"Luck of the Sea I", "Luck of the Sea II", "Luck of the Sea III",
		"Lure I", "Lure II", "Lure III",
	}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	out := logs.String()
	if !strings.Contains(out, "unauthorized mod attempted to register enchantments") {
		t.Errorf("expected unauthorized warning for rogue-mod:\n%s", out)
	}
	if !strings.Contains(out, "version=2.0.0") {
		t.Errorf("expected self version in startup log:\n%s", out)
	}
}

func TestInitialize_UnknownSelfVersion(t *testing.T) {
	a, logs := newTestApp(t, mods.NewSet())

	if _, err := a.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !strings.Contains(logs.String(), "Unknown?!?!") {
		t.Fatalf("expected unknown version marker:\n%s", logs.String())
	}
	if items := a.Items(); len(items) != 0 {
		t.Fatalf("expected empty group, got %d items", len(items))
	}
}

func TestInitialize_Twice(t *testing.T) {
	a, _ := newTestApp(t, mods.NewSet())
	if _, err := a.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, err := a.Initialize(); err == nil {
		t.Fatal("expected duplicate group error on second Initialize")
	}
}

func TestPopulate_MatchesItems(t *testing.T) {
	a, _ := newTestApp(t, mods.NewSet(fishMod()))
	if _, err := a.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	slots, err := a.Populate()
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	items := a.Items()
	if len(slots) != len(items) {
		t.Fatalf("slots %d != items %d", len(slots), len(items))
	}
	for i, s := range slots {
		if s.ItemID != gamedata.ItemEnchantedBook {
			t.Fatalf("slot %d has item %d", i, s.ItemID)
		}
	}

	g, ok := a.Groups.ByID(a.GroupID)
	if !ok {
		t.Fatal("shared group not registered")
	}
	if got := g.Title(a.Language()); got != "Shared Enchantments" {
		t.Errorf("group title = %q", got)
	}
	if a.GroupID.String() != "murkys-many-apis:shared_enchantments" {
		t.Errorf("group id = %s", a.GroupID)
	}
}

func TestNew_LoadsModsDir(t *testing.T) {
	dir := t.TempDir()
	manifest := "id = \"murkys-many-fish\"\n\n[[enchantments]]\nid = \"lure\"\nmax_level = 2\n"
	if err := os.WriteFile(filepath.Join(dir, "fish.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.ModsDir = dir
	a, err := New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if n := len(a.Items()); n != 2 {
		t.Fatalf("expected 2 items, got %d", n)
	}
}

func TestNew_UnknownGameVersion(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GameVersion = "pc-0.1"
	if _, err := New(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatal("expected error for unknown game version")
	}
}

func TestNewWithData_InvalidSelfModID(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SelfModID = "Bad Id"
	if _, err := NewWithData(cfg, slog.New(slog.DiscardHandler), mustLoad(t), mods.NewSet()); err == nil {
		t.Fatal("expected error for invalid self mod id")
	}
}
