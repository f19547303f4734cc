// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the coauthor-engine CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/coauthor-engine/internal/secrets"
	"github.com/pdiddy/coauthor-engine/internal/snapshot"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds API contact details, one file per key.
const secretsDir = ".secrets/"

var (
	// cfg is decoded from viper before any subcommand runs.
	cfg types.Config

	// loadedSecrets holds values loaded from .secrets/ at startup.
	loadedSecrets secrets.Secrets
)

// rootCmd is the base command for the coauthor-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "coauthor-engine",
	Short: "Co-authorship analytics over arXiv categories",
	Long: `coauthor-engine harvests arXiv article metadata for six subject categories,
aggregates it into per-author co-authorship records, and analyzes random
samples of those records.

Run fetch once to write the snapshots under the data directory, then analyze
for the interactive session, or rank, compare, pair and network for single
non-interactive steps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := decodeConfig(&cfg); err != nil {
			return err
		}
		logger, err := newLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)

		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			slog.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./coauthor-engine.yaml or ~/.config/coauthor-engine/coauthor-engine.yaml)")
	pf.String("data-dir", snapshot.DefaultDir, "directory holding the category snapshots")
	pf.String("output-dir", "output", "directory receiving network files")
	pf.String("log-level", "warn", "diagnostic log level (debug, info, warn, error)")
	pf.String("log-format", "text", "diagnostic log format (text, json)")

	bindFlag("data_dir", pf.Lookup("data-dir"))
	bindFlag("output_dir", pf.Lookup("output-dir"))
	bindFlag("log.level", pf.Lookup("log-level"))
	bindFlag("log.format", pf.Lookup("log-format"))
}

// setDefaults registers the configuration defaults on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", snapshot.DefaultDir)
	v.SetDefault("output_dir", "output")
	v.SetDefault("fetch.timeout", "60s")
	v.SetDefault("fetch.user_agent", "coauthor-engine/"+version)
	v.SetDefault("fetch.max_results", 300)
	v.SetDefault("fetch.page_size", 100)
	v.SetDefault("fetch.request_interval", "3s")
	v.SetDefault("fetch.max_retries", 5)
	v.SetDefault("analysis.sample_size", snapshot.DefaultSampleSize)
	v.SetDefault("analysis.seed", 0)
	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("chart.width", 0)
	v.SetDefault("chart.height", 12)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coauthor-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coauthor-engine"))
		}
	}

	viper.SetEnvPrefix("COAUTHOR_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// decodeConfig unmarshals the global viper state into c.
func decodeConfig(c *types.Config) error {
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	return nil
}

// bindFlag binds a flag to a viper key. Binding only fails on a nil flag,
// which is a programming error.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

// newLogger builds the diagnostic logger described by lc.
func newLogger(lc types.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if lc.Level != "" {
		if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", lc.Level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lc.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", lc.Format)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
