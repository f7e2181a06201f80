package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-craft/shared-enchantments/internal/mods"
)

func newFetchCmd(rt *cliEnv) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "fetch <source>",
		Short: "Download a bundle of mod manifests into the mods directory",
		Example: `  enchantshelf fetch git::https://github.com/example/modpack.git//mods?ref=v1.2.0
  enchantshelf fetch ./local/manifests --dest /srv/mods`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dest == "" {
				dest = rt.cfg.ModsDir
			}
			rt.log.Info("start downloading manifests", "source", args[0], "dest", dest)
			if err := mods.Fetch(cmd.Context(), args[0], dest); err != nil {
				return err
			}

			set, err := mods.LoadDir(dest)
			if err != nil {
				return err
			}
			rt.log.Info("done downloading manifests", "dest", dest, "mods", set.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&dest, "dest", "", "destination directory (default: mods_dir)")
	return cmd
}
