// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/internal/logging"
)

// app holds what the root command resolves before any subcommand runs.
var app struct {
	cfg config.Config
	log *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "stepviz",
	Short: "Record and replay classic algorithms step by step",
	Long: `stepviz runs an algorithm once, records every renderable instant as a step,
and replays the steps with play, pause, step, seek and speed controls.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (overrides config)")
}

func loadConfig(cmd *cobra.Command) error {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.FromFile(path); err != nil {
			return err
		}
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.log = logging.New(level)
	app.log.Debug("config loaded", "algorithm", cfg.Algorithm, "speed", cfg.Speed, "base_delay", cfg.BaseDelay)
	return nil
}
