package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate mod manifests against the allow-list and catalog",
		Long: `check loads every manifest and reports contributors whose registration was
rejected. Enchantments missing from the catalog are listed but do not fail
the check: they are skipped when the group is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, rejected, err := rt.initApp()
			if err != nil {
				return err
			}

			catalog := a.Catalog()
			for _, m := range a.Mods.All() {
				var missing []string
				for _, d := range m.Enchantments {
					if _, ok := catalog.ByName(d.ID); !ok {
						missing = append(missing, d.ID)
					}
				}
				if len(missing) > 0 {
					fprintln(cmd, fmt.Sprintf("%s: not in catalog, skipped: %s", m.ID, strings.Join(missing, ", ")))
				}
			}

			if len(rejected) > 0 {
				return fmt.Errorf("%w: rejected contributors: %s", errCheckFailed, strings.Join(rejected, ", "))
			}
			fprintln(cmd, fmt.Sprintf("ok: %d mods, %d items", a.Mods.Len(), len(a.Items())))
			return nil
		},
	}
}
