package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-arcade/internal/registry"
	"github.com/vovakirdan/candy-arcade/internal/storage"
)

var (
	flagClear  bool
	flagLevels int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [skin]",
	Short: "Show high scores and level history",
	Long: `Display the top 10 scores and the most recent level results for a
skin. Without a skin, print a summary of every skin played so far.

Examples:
  candy scores
  candy scores candy
  candy scores bubble --levels 20
  candy scores candy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and level results of the skin")
	scoresCmd.Flags().IntVar(&flagLevels, "levels", 10, "Number of recent level results to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'candy list' to see available skins.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'candy play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	results, err := store.LevelResults(gameID, flagLevels)
	if err != nil {
		return err
	}
	if len(results) > 0 {
		fmt.Println()
		fmt.Println("Recent levels")
		fmt.Println()
		fmt.Printf("  %-5s  %-16s  %-7s  %-5s  %-7s  %s\n", "Level", "Name", "Score", "Moves", "Result", "Date")
		fmt.Printf("  %-5s  %-16s  %-7s  %-5s  %-7s  %s\n", "-----", "----", "-----", "-----", "------", "----")
		for _, r := range results {
			result := "failed"
			if r.Cleared {
				result = "cleared"
			}
			fmt.Printf("  %-5d  %-16s  %-7d  %-5d  %-7s  %s\n",
				r.Level, r.LevelName, r.Score, r.MovesUsed, result, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Levels cleared: %d  Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LevelsCleared, stats.BestLevel)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-6s  %-8s  %-10s  %s\n", "Skin", "Games", "Best", "Best level", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "----", "----------", "-----------")
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-8d  %-10d  %s\n",
			g.ID, stats.GamesCount, stats.HighScore, stats.BestLevel, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
