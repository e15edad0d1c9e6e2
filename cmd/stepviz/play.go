// SPDX-License-Identifier: MIT

package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/internal/observability"
	"github.com/katalvlaran/stepviz/internal/ui"
	"github.com/katalvlaran/stepviz/player"
)

var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Record a run and replay it in the terminal",
	Example: `  stepviz play bfs --params '{edges: [[A, B], [A, C], [B, D]], start: A}' --autoplay
  stepviz play bubble-sort --params '{random: {n: 12, seed: 7}}' --speed 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		trace, err := buildTrace(ctx, cmd, args)
		if err != nil {
			return err
		}

		speed := app.cfg.Speed
		if cmd.Flags().Changed("speed") {
			speed, _ = cmd.Flags().GetFloat64("speed")
		}
		delay := app.cfg.BaseDelay
		if cmd.Flags().Changed("base-delay") {
			delay, _ = cmd.Flags().GetDuration("base-delay")
		}
		addr := app.cfg.MetricsAddr
		if cmd.Flags().Changed("metrics-addr") {
			addr, _ = cmd.Flags().GetString("metrics-addr")
		}

		opts := []player.Option{
			player.WithLogger(app.log),
			player.WithSpeed(speed),
			player.WithBaseDelay(delay),
		}
		if addr != "" {
			m := observability.New()
			opts = append(opts, player.WithMetrics(m))
			go func() {
				if err := m.Serve(ctx, addr, app.log); err != nil {
					app.log.Error("metrics server stopped", "error", err)
				}
			}()
		}

		ctrl, err := player.New(opts...)
		if err != nil {
			return err
		}
		defer ctrl.Close()

		model := ui.New(ctrl, trace)
		if _, err := ctrl.Load(trace); err != nil {
			return err
		}
		if auto, _ := cmd.Flags().GetBool("autoplay"); auto {
			ctrl.Play()
		}

		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	},
}

func init() {
	addRequestFlags(playCmd)
	playCmd.Flags().Float64("speed", player.DefaultSpeed, "playback speed multiplier, 0.5 to 10")
	playCmd.Flags().Duration("base-delay", player.DefaultBaseDelay, "delay between steps at speed 1")
	playCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	playCmd.Flags().Bool("autoplay", false, "start playing immediately")
	rootCmd.AddCommand(playCmd)
}
