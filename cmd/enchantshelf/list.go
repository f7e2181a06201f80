package main

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-theft-craft/shared-enchantments/internal/export"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func newListCmd(rt *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the contents of the shared enchantments group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := rt.initApp()
			if err != nil {
				return err
			}
			items := a.Items()
			g, _ := a.Groups.ByID(a.GroupID)
			title := g.Title(a.Language())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(export.NewListing(a.GroupID.String(), title, items, a.Language()))
			}

			t := newTable("#", "Contributor", "Enchantment", "Level", "Item")
			for i, it := range items {
				t.Row(strconv.Itoa(i+1), it.Contributor, it.Enchantment.ResourceName(), strconv.Itoa(it.Level), it.Label(a.Language()))
			}
			fprintln(cmd, title+" ("+a.GroupID.String()+")")
			fprintln(cmd, t.String())
			fprintln(cmd, strconv.Itoa(len(items))+" items")
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")
	return cmd
}
