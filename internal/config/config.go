// Package config loads enchantshelf settings from defaults, an optional
// TOML file, ENCHANTSHELF_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ENCHANTSHELF_MODS_DIR.
	EnvPrefix = "ENCHANTSHELF"
	// FileName is the config file searched for in the working directory.
	FileName = "enchantshelf"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the runtime configuration.
type Config struct {
	// SelfModID is the namespace the shared item group is registered under.
	SelfModID string `mapstructure:"self_mod_id"`
	// AllowList holds the contributor mod IDs allowed to register enchantments.
	AllowList []string `mapstructure:"allow_list"`
	ModsDir   string   `mapstructure:"mods_dir"`
	// GameVersion selects the enchantment catalog, e.g. "pc-1.8".
	GameVersion string `mapstructure:"game_version"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"` // "text", "json" or "logfmt"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SelfModID:   "murkys-many-apis",
		AllowList:   []string{"murkys-many-fish"},
		ModsDir:     "mods",
		GameVersion: "pc-1.8",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, FileName.toml is looked up
	// in the working directory and skipped if absent.
	File string
	// Flags are bound by key name, so a flag "mods-dir" overrides "mods_dir".
	Flags *pflag.FlagSet
}

// Load resolves the configuration.
func Load(opts Options) (*Config, string, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("self_mod_id", def.SelfModID)
	v.SetDefault("allow_list", def.AllowList)
	v.SetDefault("mods_dir", def.ModsDir)
	v.SetDefault("game_version", def.GameVersion)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case opts.File != "" && errors.Is(err, os.ErrNotExist):
			return nil, "", fmt.Errorf("config file %s: %w", opts.File, err)
		default:
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	if opts.Flags != nil {
		var bindErr error
		opts.Flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !isKnownKey(key) {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, "", fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

func isKnownKey(key string) bool {
	switch key {
	case "self_mod_id", "allow_list", "mods_dir", "game_version", "log_level", "log_format":
		return true
	}
	return false
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SelfModID) == "" {
		return fmt.Errorf("%w: self_mod_id is empty", ErrInvalidConfig)
	}
	for i, id := range c.AllowList {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: allow_list[%d] is empty", ErrInvalidConfig, i)
		}
	}
	if c.GameVersion == "" {
		return fmt.Errorf("%w: game_version is empty", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
