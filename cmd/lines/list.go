package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all registered game variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Board", "Balls", "Title")
	fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "-----", "-----", "-----")

	for _, v := range variants {
		board := fmt.Sprintf("%dx%d", v.Size, v.Size)
		fmt.Printf("  %-*s  %-5s  %-5d  %s\n", maxIDLen, v.ID, board, v.BallsPerTurn, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'lines new <id>' to start a game.")
}
