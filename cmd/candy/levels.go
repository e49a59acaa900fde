package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-arcade/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the configured levels",
	Long: `Load and validate the match3 config and print its levels, after the
difficulty preset is applied.

Examples:
  candy levels
  candy levels --difficulty hard
  candy levels --config ./my-levels.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kinds := "all"
	if len(cfg.Kinds) > 0 {
		kinds = strings.Join(cfg.Kinds, " ")
	}
	fmt.Printf("Levels (%s, kinds: %s)\n", preset, kinds)
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-5s  %-7s  %-5s  %s\n", "ID", "Name", "Board", "Target", "Moves", "Special")
	fmt.Printf("  %-3s  %-16s  %-5s  %-7s  %-5s  %s\n", "--", "----", "-----", "------", "-----", "-------")
	for _, l := range cfg.Levels.List {
		special := "-"
		if l.SpecialThreshold > 0 {
			special = fmt.Sprintf("%d+", l.SpecialThreshold)
		}
		board := fmt.Sprintf("%dx%d", l.Rows, l.Cols)
		fmt.Printf("  %-3d  %-16s  %-5s  %-7d  %-5d  %s\n", l.ID, l.Name, board, l.TargetScore, l.MoveLimit, special)
	}
}

// loadConfig loads the match3 config named by --config with the
// --difficulty preset applied.
func loadConfig() (config.Match3Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Match3Config{}, "", err
	}
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return config.Match3Config{}, "", err
	}
	config.ApplyMatch3Preset(&cfg, preset)
	return cfg, preset, nil
}
