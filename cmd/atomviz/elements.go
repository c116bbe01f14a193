package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/atom"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List all elements",
	Long:  `Shows the element catalogue with atomic numbers, symbols and shell occupancy.`,
	Args:  cobra.NoArgs,
	Run:   runElements,
}

func runElements(_ *cobra.Command, _ []string) {
	elements := atom.Elements()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range elements {
		maxNameLen = max(maxNameLen, len(e.Name))
	}

	// Print header
	fmt.Printf("  %3s  %-3s  %-*s  %s\n", "Z", "Sym", maxNameLen, "Name", "Shells")
	fmt.Printf("  %3s  %-3s  %-*s  %s\n", "--", "---", maxNameLen, "----", "------")

	for _, e := range elements {
		fmt.Printf("  %3d  %-3s  %-*s  %s\n", e.Number, e.Symbol, maxNameLen, e.Name, atom.Configuration(e.Number))
	}

	fmt.Println()
	fmt.Println("Run 'atomviz view --element <symbol>' to view an element.")
}
