package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/atom"
)

var flagPlot bool

var shellsCmd = &cobra.Command{
	Use:   "shells <element>",
	Short: "Show how electrons fill the shells of an element",
	Long: `Distribute the electrons of an element over the shells
2, 8, 18, 32, 32, 18, 8, filling each shell before the next.

Examples:
  atomviz shells Na
  atomviz shells 79 --plot`,
	Args: cobra.ExactArgs(1),
	RunE: runShells,
}

func init() {
	shellsCmd.Flags().BoolVar(&flagPlot, "plot", false, "Plot occupancy against shell capacity")
}

func runShells(_ *cobra.Command, args []string) error {
	e, err := atom.Find(args[0])
	if err != nil {
		return err
	}

	shells := atom.Distribute(e.Number)
	fmt.Printf("%s\n\n", e)
	fmt.Printf("  %-5s  %-9s  %s\n", "Shell", "Electrons", "Capacity")
	fmt.Printf("  %-5s  %-9s  %s\n", "-----", "---------", "--------")
	for i, k := range shells {
		fmt.Printf("  %-5d  %-9d  %d\n", i+1, k, atom.Capacity(i))
	}
	fmt.Printf("\nConfiguration: %s\n", atom.Configuration(e.Number))

	if !flagPlot {
		return nil
	}

	occupied := make([]float64, len(atom.Capacities()))
	capacity := make([]float64, len(occupied))
	for i, c := range atom.Capacities() {
		capacity[i] = float64(c)
		if i < len(shells) {
			occupied[i] = float64(shells[i])
		}
	}

	fmt.Println()
	fmt.Println(asciigraph.PlotMany([][]float64{capacity, occupied},
		asciigraph.Height(10),
		asciigraph.Width(49),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Yellow),
		asciigraph.SeriesLegends("capacity", "electrons"),
		asciigraph.Caption("electrons per shell, K to Q"),
	))
	return nil
}
