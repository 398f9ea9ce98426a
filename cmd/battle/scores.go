package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tank-arcade/internal/registry"
	"github.com/vovakirdan/tank-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [1|2]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for one or two player games.

Examples:
  battle scores
  battle scores 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	id, err := gameID(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(id, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Stage", "Kills", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, e.Score, e.Stage, e.Kills, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(id); err == nil {
		fmt.Fprintf(out, "\nGames: %d  Best: %d  Best stage: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestStage, stats.AvgScore)
	}
	return nil
}
