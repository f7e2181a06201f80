package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-craft/shared-enchantments/internal/app"
	"github.com/go-theft-craft/shared-enchantments/internal/config"
	"github.com/go-theft-craft/shared-enchantments/internal/logging"
	"github.com/go-theft-craft/shared-enchantments/pkg/gamedata"
)

// cliEnv is what every subcommand gets after configuration is resolved.
type cliEnv struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	rt := &cliEnv{}

	root := &cobra.Command{
		Use:   "enchantshelf",
		Short: "Shared enchanted-book item group for cooperating mods",
		Long: `enchantshelf builds the shared enchantments item group: every allow-listed
mod manifest in the mods directory contributes enchanted books, one per level,
for each enchantment it declares that exists in the selected game version.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, used, err := config.Load(config.Options{File: cfgFile, Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			if used != "" {
				log.Debug("loaded config from file", "path", used)
			}
			rt.cfg, rt.log = cfg, log
			return nil
		},
	}

	def := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./enchantshelf.toml if present)")
	pf.String("mods-dir", def.ModsDir, "directory of contributor mod manifests")
	pf.StringSlice("allow-list", def.AllowList, "mod IDs allowed to register enchantments")
	pf.String("self-mod-id", def.SelfModID, "namespace of the shared item group")
	pf.String("game-version", def.GameVersion, "game data version providing the enchantment catalog ("+strings.Join(gamedata.RegisteredVersions(), ", ")+")")
	pf.String("log-level", def.LogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", def.LogFormat, "log format: text, json, logfmt")

	root.AddCommand(
		newListCmd(rt),
		newStatusCmd(rt),
		newExportCmd(rt),
		newCheckCmd(rt),
		newFetchCmd(rt),
		newInspectCmd(rt),
	)
	return root
}

// initApp loads and initializes the shared group.
func (rt *cliEnv) initApp() (*app.App, []string, error) {
	a, err := app.New(rt.cfg, rt.log)
	if err != nil {
		return nil, nil, err
	}
	rejected, err := a.Initialize()
	if err != nil {
		return nil, nil, fmt.Errorf("initialize: %w", err)
	}
	return a, rejected, nil
}

func fprintln(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
