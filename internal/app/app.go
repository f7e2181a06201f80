// Package app wires the shared enchantment group into a running instance:
// it loads the catalog and mod manifests, registers the group and feeds
// every contributor's manifest through the registry.
package app

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-theft-craft/shared-enchantments/internal/config"
	"github.com/go-theft-craft/shared-enchantments/internal/enchantgroup"
	"github.com/go-theft-craft/shared-enchantments/internal/itemgroup"
	"github.com/go-theft-craft/shared-enchantments/internal/mods"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"

	_ "github.com/go-theft-craft/shared-enchantments/pkg/gamedata/versions/pc_1_8"
)

const (
	// GroupPath is the path of the shared group inside the self mod namespace.
	GroupPath = "shared_enchantments"
	// GroupTitleKey is the translation key of the shared group's name.
	GroupTitleKey = "itemgroup.murkys-common-lib.shared_enchantments"

	unknownVersion = "Unknown?!?!"
)

//go:embed lang/en_us.json
var groupLang []byte

// App is one initialized instance.
type App struct {
	cfg  *config.Config
	log  *slog.Logger
	data *gamedata.GameData
	lang gamedata.LanguageRegistry

	Mods     *mods.Set
	Registry *enchantgroup.Registry
	Groups   *itemgroup.Registry
	GroupID  itemgroup.Identifier
}

// New loads game data and mod manifests as configured. Call Initialize
// before use.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	data, err := gamedata.Load(cfg.GameVersion)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	set, err := mods.LoadDir(cfg.ModsDir)
	if err != nil {
		return nil, fmt.Errorf("load mods: %w", err)
	}
	return NewWithData(cfg, log, data, set)
}

// NewWithData builds an App from already loaded game data and mods.
func NewWithData(cfg *config.Config, log *slog.Logger, data *gamedata.GameData, set *mods.Set) (*App, error) {
	groupID := itemgroup.ID(cfg.SelfModID, GroupPath)
	if _, err := itemgroup.ParseIdentifier(groupID.String()); err != nil {
		return nil, fmt.Errorf("self mod id: %w", err)
	}

	lang, err := mergeLanguage(data.Language, groupLang)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:  cfg,
		log:  log,
		data: data,
		lang: lang,
		Mods: set,
		Registry: enchantgroup.New(enchantgroup.Options{
			AllowList: cfg.AllowList,
			Mods:      set,
			Log:       log,
		}),
		Groups:  itemgroup.NewRegistry(),
		GroupID: groupID,
	}, nil
}

// Initialize registers the shared group and every manifest that declares
// enchantments. Rejected contributors are logged by the registry and
// reported in the returned list; they are not an error.
func (a *App) Initialize() (rejected []string, err error) {
	a.log.Info("registering shared item groups")
	err = a.Groups.Register(itemgroup.Group{
		ID:          a.GroupID,
		Icon:        protocol.Slot{ItemID: gamedata.ItemEnchantedBook, Count: 1},
		DisplayName: GroupTitleKey,
		Entries:     a.entries,
	})
	if err != nil {
		return nil, err
	}

	for _, m := range a.Mods.All() {
		if len(m.Enchantments) == 0 {
			continue
		}
		if !a.Registry.Register(m.ID, m.Entries()) {
			rejected = append(rejected, m.ID)
		}
	}

	version, ok := a.Mods.Version(a.cfg.SelfModID)
	if !ok {
		version = unknownVersion
	}
	a.log.Info("Murky has Many APIs!", "version", version, "gameVersion", a.data.Version)
	return rejected, nil
}

func (a *App) entries(ctx itemgroup.DisplayContext) []protocol.Slot {
	items := a.Registry.Enumerate(ctx.Catalog)
	slots := make([]protocol.Slot, len(items))
	for i, it := range items {
		slots[i] = it.Slot()
	}
	return slots
}

// DisplayContext returns the context the shared group is populated with.
func (a *App) DisplayContext() itemgroup.DisplayContext {
	return itemgroup.DisplayContext{Catalog: a.data.Enchantments}
}

// Populate returns the shared group's current contents.
func (a *App) Populate() ([]protocol.Slot, error) {
	return a.Groups.Populate(a.GroupID, a.DisplayContext())
}

// Items returns the shared group's current contents as display items.
func (a *App) Items() []enchantgroup.DisplayItem {
	return a.Registry.Enumerate(a.data.Enchantments)
}

// Catalog exposes the live enchantment catalog.
func (a *App) Catalog() gamedata.EnchantmentRegistry {
	return a.data.Enchantments
}

// Language returns the game translations merged with the group's own.
func (a *App) Language() gamedata.LanguageRegistry {
	return a.lang
}

func mergeLanguage(base gamedata.LanguageRegistry, overlay []byte) (gamedata.LanguageRegistry, error) {
	var extra map[string]string
	if err := json.Unmarshal(overlay, &extra); err != nil {
		return nil, fmt.Errorf("parse embedded language: %w", err)
	}
	merged := map[string]string{}
	if base != nil {
		merged = base.All()
	}
	for k, v := range extra {
		merged[k] = v
	}
	return gamedata.NewLanguageRegistry(merged), nil
}
