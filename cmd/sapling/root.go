package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sapling",
		Short: "Sapling grows animated random trees",
		Long: `Sapling draws a randomized branching tree one frame at a time.
Use "run" for an interactive window with a parameter panel, "term" to grow
one in the terminal, or "render" to write a finished tree to a PNG without
opening a window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("log-level")
			level, err := logging.ParseLevel(name)
			if err != nil {
				return err
			}
			sapling.SetLogger(logging.New(level))
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(), newRenderCmd(), newTermCmd(), newKeysCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
