package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/highscore"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 5 table kept in the high-score file (--scores).

Examples:
  pacman scores
  pacman scores --scores ./highscores.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	path, err := config.ExpandHome(flagScores)
	if err != nil {
		fail("%v", err)
	}
	table := highscore.Open(path, logger).Table()

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "-----")
	for i, e := range table {
		fmt.Printf("  %-4d  %-10s  %d\n", i+1, e.Name, e.Score)
	}
}
