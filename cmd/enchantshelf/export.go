package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-craft/shared-enchantments/internal/export"
	"github.com/go-theft-craft/shared-enchantments/pkg/protocol"
)

func newExportCmd(rt *cliEnv) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the shared group's items to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := rt.initApp()
			if err != nil {
				return err
			}
			items := a.Items()

			switch format {
			case "nbt":
				err = export.WriteNBT(out, items)
			case "slots":
				var slots []protocol.Slot
				if slots, err = a.Populate(); err == nil {
					err = export.WriteSlots(out, slots)
				}
			case "json":
				g, _ := a.Groups.ByID(a.GroupID)
				err = export.WriteJSON(out, export.NewListing(a.GroupID.String(), g.Title(a.Language()), items, a.Language()))
			default:
				return fmt.Errorf("unknown export format %q", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", out, err)
			}
			rt.log.Info("exported shared group", "path", out, "format", format, "items", len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "nbt", "output format: nbt, slots or json")
	cmd.Flags().StringVarP(&out, "output", "o", "shared_enchantments.dat", "output file")
	return cmd
}
