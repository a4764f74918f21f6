package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randscreen/internal/core"
	"github.com/vovakirdan/randscreen/internal/platform/tui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color palette",
	Long:  `Shows the 16 colors that foreground and background are drawn from.`,
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func runPalette(cmd *cobra.Command, args []string) {
	colors := core.Palette()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, c := range colors {
		if n := len(c.String()); n > maxNameLen {
			maxNameLen = n
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-*s  %s\n", "ANSI", maxNameLen, "Name", "Swatch")
	fmt.Fprintf(out, "  %-4s  %-*s  %s\n", "----", maxNameLen, "----", "------")

	for _, c := range colors {
		swatch := tui.Swatch("      ", core.ColorDefault, c)
		fmt.Fprintf(out, "  %-4d  %-*s  %s\n", c.ANSI(), maxNameLen, c.String(), swatch)
	}
}
