// candy is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	candy list              - List available skins
//	candy play [skin]       - Play a skin (default: candy)
//	candy menu              - Pick a skin interactively
//	candy levels            - Show the configured levels
//	candy scores <skin>     - Show high scores and level history
//	candy sim               - Autoplay headless with a seed
//	candy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.candy/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-arcade/internal/config"
	// Import skins to register them
	_ "github.com/vovakirdan/candy-arcade/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logLevel = log.InfoLevel
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candy",
	Short: "Candy Arcade - match-3 puzzles in your terminal",
	Long: `Candy Arcade is a terminal match-3 game. Swap neighbouring candies to
line up three or more of a kind, reach each level's target score before
running out of moves, and chain cascades for combo bonuses.

Available commands:
  list     - Show all available skins
  play     - Play a skin directly
  menu     - Interactive skin picker
  levels   - Show the configured levels
  scores   - View high scores and level history
  sim      - Autoplay headless, for testing configs
  serve    - Start SSH server for remote play

Examples:
  candy play
  candy play bubble --difficulty hard
  candy levels --config ./my-levels.yaml
  candy sim --seed 42
  candy serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logLevel = lvl
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.candy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	l.SetLevel(logLevel)
	return l
}

// fileLogger logs to ~/.candy/candy.log while a full screen program owns the
// terminal. The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	path := filepath.Join(config.DataDir(), "candy.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "candy"), func() { f.Close() }
}
