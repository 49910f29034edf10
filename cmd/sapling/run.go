package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/sapling"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and grow trees interactively",
		Long: `Run opens a window with the tree canvas and a parameter panel.
Up/Down select a row, Left/Right adjust it, Enter commits, R re-renders,
N applies the neuro-synapse preset, P exports a PNG, Space pauses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rc := cfg.RunConfig()

			if cmd.Flags().Changed("hide-panel") {
				rc.HidePanel, _ = cmd.Flags().GetBool("hide-panel")
			}
			if cmd.Flags().Changed("status") {
				rc.ShowStatus, _ = cmd.Flags().GetBool("status")
			}
			if path, _ := cmd.Flags().GetString("script"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				script, err := sapling.LoadPanelScript(data)
				if err != nil {
					return err
				}
				rc.Script = script
			}

			addr, _ := cmd.Flags().GetString("metrics-addr")
			m, _ := startMetrics(cmd.Context(), addr)
			rc.FrameHook = m.ObserveFrame

			return sapling.Run(rc)
		},
	}

	addTreeFlags(cmd.Flags())
	cmd.Flags().Bool("hide-panel", false, "Hide the parameter panel")
	cmd.Flags().Bool("status", true, "Show the FPS and growth status overlay")
	cmd.Flags().String("script", "", "JSON panel script to replay")
	addMetricsAddrFlag(cmd.Flags())
	return cmd
}
