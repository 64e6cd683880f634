package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trainer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available activities",
	Long:  `Shows a list of all activities registered in the trainer.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	activities := registry.List()

	if len(activities) == 0 {
		fmt.Println("No activities available.")
		return
	}

	fmt.Println("Available activities:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range activities {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, a := range activities {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Println()
	fmt.Println("Run 'trainer play <id>' to start one.")
}
