package main

import (
	"fmt"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/telemetry"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Grow a tree without a window and save it as PNG",
		Long: `Render simulates display refreshes until the tree stops growing or the
tick budget runs out, then writes the canvas to a PNG file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-ticks") {
				cfg.Headless.MaxTicks, _ = cmd.Flags().GetInt("max-ticks")
			}
			if cmd.Flags().Changed("out") {
				cfg.Headless.Output, _ = cmd.Flags().GetString("out")
			}

			m, reg := startMetrics(cmd.Context(), "")
			opts := cfg.RenderOptions()
			opts.FrameHook = m.ObserveFrame

			surface, res, err := sapling.Render(cmd.Context(), opts)
			if surface != nil {
				defer surface.Close()
			}
			if err != nil {
				return err
			}
			if err := surface.SavePNG(cfg.Headless.Output); err != nil {
				return err
			}

			if path, _ := cmd.Flags().GetString("metrics-file"); path != "" {
				if err := telemetry.WriteTextfile(path, reg); err != nil {
					return err
				}
			}

			status := "settled"
			if !res.Settled {
				status = "tick budget reached"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d segments in %d ticks (%s)\n",
				cfg.Headless.Output, res.Segments, res.Ticks, status)
			return nil
		},
	}

	addTreeFlags(cmd.Flags())
	cmd.Flags().StringP("out", "o", "tree.png", "Output PNG path")
	cmd.Flags().Int("max-ticks", 0, "Maximum refresh ticks to simulate (0 = no cap)")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in textfile format after rendering")
	return cmd
}
