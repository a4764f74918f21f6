// randscreen is a terminal screensaver: it sprays random characters in random
// colors over the screen until a key is pressed, then restores the terminal.
//
// Usage:
//
//	randscreen               - Run the screensaver
//	randscreen palette       - Show the color palette
//	randscreen backends      - List available terminal backends
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.randscreen/config.yaml, ./configs/randscreen.yaml)
//	--seed <value>      - RNG seed for reproducible runs
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file while the terminal is in use
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/randscreen/internal/platform/console"
	_ "github.com/vovakirdan/randscreen/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randscreen",
	Short: "Random characters, random colors, until you press a key",
	Long: `randscreen paints random printable characters in random foreground and
background colors at random positions of the terminal. Press any key to stop;
the original colors are restored and the screen is cleared.

Examples:
  randscreen
  randscreen --backend tui
  randscreen --count 4000 --title "Goofy Chars!"
  randscreen --interval 20ms --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSaver,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")

	addSaverFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(backendsCmd)
}
