package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const keysMarkdown = `# Sapling key bindings

## Window (sapling run)

| Key | Action |
| --- | --- |
| Up / Down | Select a panel row |
| Left / Right | Adjust the selected value (Shift: ten steps) |
| Enter | Commit the edit, or activate an action row |
| R | Re-render from the panel values |
| N | Apply the neuro-synapse preset |
| P | Export the canvas as PNG |
| Space | Pause or resume growth |

## Terminal (sapling term)

| Key | Action |
| --- | --- |
| r | Regrow |
| Space | Pause or resume growth |
| q, Esc, Ctrl-C | Quit |
`

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			text := keysMarkdown
			if isTerminal(out) {
				r, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(80),
				)
				if err != nil {
					return fmt.Errorf("markdown renderer: %w", err)
				}
				if text, err = r.Render(keysMarkdown); err != nil {
					return fmt.Errorf("render keys: %w", err)
				}
			}
			_, err := fmt.Fprint(out, text)
			return err
		},
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
