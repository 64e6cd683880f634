package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trainer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <activity>",
	Short: "Start an activity directly",
	Long: `Start the specified activity, skipping the root menu.
When the activity ends you land on the root menu as usual.

Examples:
  trainer play aim
  trainer play typing --theme light
  trainer play aim --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	id := args[0]

	// Check if activity exists
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown activity %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'trainer list' to see available activities.")
		os.Exit(1)
	}

	if err := runInteractive(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
