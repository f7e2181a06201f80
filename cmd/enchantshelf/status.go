package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newStatusCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show every loaded mod and whether its enchantments were accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := rt.initApp()
			if err != nil {
				return err
			}

			registered := map[string]int{}
			for _, reg := range a.Registry.Contributors() {
				registered[reg.Contributor] = len(reg.Entries)
			}
			perMod := map[string]int{}
			for _, it := range a.Items() {
				perMod[it.Contributor]++
			}

			t := newTable("Mod", "Version", "Allowed", "Declared", "Registered", "Items")
			for _, m := range a.Mods.All() {
				version := m.Version
				if version == "" {
					version = "-"
				}
				state := "-"
				if n, ok := registered[m.ID]; ok {
					state = strconv.Itoa(n)
				}
				t.Row(
					m.ID,
					version,
					strconv.FormatBool(a.Registry.Allowed(m.ID)),
					strconv.Itoa(len(m.Enchantments)),
					state,
					strconv.Itoa(perMod[m.ID]),
				)
			}
			fprintln(cmd, t.String())

			groups := newTable("Group", "Title", "Items")
			for _, g := range a.Groups.All() {
				slots, err := a.Groups.Populate(g.ID, a.DisplayContext())
				if err != nil {
					return err
				}
				groups.Row(g.ID.String(), g.Title(a.Language()), strconv.Itoa(len(slots)))
			}
			fprintln(cmd, groups.String())
			return nil
		},
	}
}
