package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-arcade/internal/core"
	"github.com/vovakirdan/candy-arcade/internal/games/match3"
	"github.com/vovakirdan/candy-arcade/internal/platform/tui"
	"github.com/vovakirdan/candy-arcade/internal/registry"
	"github.com/vovakirdan/candy-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagQuiet      bool
)

var playCmd = &cobra.Command{
	Use:   "play [skin]",
	Short: "Play a skin",
	Long: `Start playing the given skin (candy by default).

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Select a candy, select a neighbour to swap
  Esc/B         - Drop the selection
  H/?           - Show a hint
  M             - Mute the bell
  P             - Pause
  R             - Restart (after game over)
  Ctrl+S        - Save a screenshot to ~/.candy/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 5 more moves per level, 20% lower targets
  normal - Levels as configured
  hard   - 5 fewer moves per level, 20% higher targets

Examples:
  candy play
  candy play bubble
  candy play --difficulty hard
  candy play --config ./my-levels.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Never ring the terminal bell")
	}
}

// setupGames applies the shared flags to the match-3 package. The returned
// func releases the log file.
func setupGames() func() {
	logger, closeLog := fileLogger()
	match3.SetLogger(logger)
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	if !flagQuiet {
		match3.SetBellOutput(os.Stdout)
	}
	return closeLog
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, or returns nil so games still run.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "candy"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'candy list' to see available skins.")
		os.Exit(1)
	}

	closeLog := setupGames()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
