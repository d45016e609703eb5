package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryRecent bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recorded runs",
	Long: `Display runs recorded in the history database (--db). Without a
variant a summary of every variant is shown.

Examples:
  pacman history
  pacman history pacman
  pacman history pacman --recent --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "Show the latest runs instead of the best")
}

func runHistory(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown variant %q\nRun 'pacman list' to see available variants.", gameID)
	}

	var runs []storage.Run
	if flagHistoryRecent {
		runs, err = store.RecentRuns(gameID, flagHistoryLimit)
	} else {
		runs, err = store.TopScores(gameID, flagHistoryLimit)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("History - %s\n", gameID)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to record the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-8d  %-5d  %s\n", i+1, r.Name, r.Score, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-5s  %s\n", "Variant", "Games", "Best", "Average", "Level", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-5s  %s\n", "-------", "-----", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.0f  %-5d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
