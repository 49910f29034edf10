package main

import (
	"fmt"

	"github.com/phanxgames/sapling"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sapling",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sapling version %s\n", sapling.Version)
		},
	}
}
