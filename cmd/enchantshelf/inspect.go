package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-theft-craft/shared-enchantments/internal/export"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
	"github.com/go-theft-craft/shared-enchantments/pkg/nbt"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

func newInspectCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a slot file written by export --format slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := gamedata.Load(rt.cfg.GameVersion)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			slots, err := export.ReadSlots(f)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}

			t := newTable("#", "Item", "Count", "Enchantment", "Level")
			for i, s := range slots {
				ench, lvl, err := storedEnchantment(s, data.Enchantments)
				if err != nil {
					return fmt.Errorf("slot %d: %w", i, err)
				}
				t.Row(strconv.Itoa(i+1), itemName(s, data.Items), strconv.Itoa(int(s.Count)), ench, lvl)
			}
			fprintln(cmd, t.String())
			fprintln(cmd, strconv.Itoa(len(slots))+" slots")
			return nil
		},
	}
}

func itemName(s protocol.Slot, items gamedata.ItemRegistry) string {
	if s.IsEmpty() {
		return "-"
	}
	if it, ok := items.ByID(int(s.ItemID)); ok {
		return it.Name
	}
	return strconv.Itoa(int(s.ItemID))
}

// storedEnchantment reports the first stored enchantment of s, or "-" for
// slots without one.
func storedEnchantment(s protocol.Slot, catalog gamedata.EnchantmentRegistry) (string, string, error) {
	tag, err := s.Tag()
	if err != nil {
		return "", "", err
	}
	list, _ := tag["StoredEnchantments"].([]any)
	if len(list) == 0 {
		return "-", "-", nil
	}
	c, _ := list[0].(nbt.Compound)
	id, _ := c["id"].(int16)
	lvl, _ := c["lvl"].(int16)

	name := strconv.Itoa(int(id))
	if e, ok := catalog.ByID(int(id)); ok {
		name = e.ResourceName()
	}
	return name, strconv.Itoa(int(lvl)), nil
}
