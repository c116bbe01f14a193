package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/atomviz/internal/platform/tui"
	"github.com/vovakirdan/atomviz/internal/storage"
)

var (
	flagClear  bool
	flagBrowse bool
	flagLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently and most viewed elements",
	Long: `Display the selection history: the latest elements and the
elements viewed most often.

Examples:
  atomviz history
  atomviz history --browse
  atomviz history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded selections")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows per listing")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	recent, err := store.RecentSelections(flagLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No selections recorded yet.")
		fmt.Println()
		fmt.Println("Run 'atomviz view' and type an atomic number to start!")
		return nil
	}

	fmt.Println("Recent")
	fmt.Printf("  %-16s  %3s  %-14s  %s\n", "Date", "Z", "Element", "Source")
	fmt.Printf("  %-16s  %3s  %-14s  %s\n", "----", "--", "-------", "------")
	for _, s := range recent {
		fmt.Printf("  %-16s  %3d  %-14s  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.AtomicNumber, s.Element, dash(s.Source))
	}

	top, err := store.TopElements(flagLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Most viewed")
	fmt.Printf("  %-4s  %3s  %-14s  %s\n", "Rank", "Z", "Element", "Views")
	fmt.Printf("  %-4s  %3s  %-14s  %s\n", "----", "--", "-------", "-----")
	for i, c := range top {
		fmt.Printf("  %-4d  %3d  %-14s  %d\n", i+1, c.AtomicNumber, c.Element, c.Count)
	}

	// Show totals
	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d selections, %d distinct elements\n", stats.Total, stats.Distinct)
	}
	return nil
}
