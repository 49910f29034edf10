package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sapling/internal/termview"
	"github.com/spf13/cobra"
)

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Grow a tree in the terminal",
		Long: `Term draws the tree with line characters in the current terminal.
Canvas coordinates are scaled so one cell covers --cell-width by --cell-height
units. q or Esc quits, r regrows, Space pauses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cellW, _ := cmd.Flags().GetFloat64("cell-width")
			cellH, _ := cmd.Flags().GetFloat64("cell-height")
			addr, _ := cmd.Flags().GetString("metrics-addr")

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			w, h := termview.NewSurface(screen, cellW, cellH).CanvasSize()
			cfg, err := loadConfigSized(cmd, int(w), int(h))
			if err != nil {
				return err
			}

			m, _ := startMetrics(cmd.Context(), addr)
			return termview.Run(cmd.Context(), screen, termview.Options{
				Params:     cfg.Params,
				Seed:       cfg.Seed,
				CellWidth:  cellW,
				CellHeight: cellH,
				FrameHook:  m.ObserveFrame,
			})
		},
	}

	addTreeFlags(cmd.Flags())
	addMetricsAddrFlag(cmd.Flags())
	cmd.Flags().Float64("cell-width", termview.DefaultCellWidth, "Canvas units per terminal column")
	cmd.Flags().Float64("cell-height", termview.DefaultCellHeight, "Canvas units per terminal row")
	return cmd
}
