package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
	"github.com/vovakirdan/candy-arcade/internal/registry"
	"github.com/vovakirdan/candy-arcade/internal/storage"
)

var (
	flagSimTurns int
	flagSimSave  bool
	flagSimSkin  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Autoplay the levels headless",
	Long: `Play every level without a terminal UI, always taking the first
productive swap, and print how each level ended. Useful for checking that
a level config is winnable. Use --seed for a reproducible run.

Examples:
  candy sim --seed 42
  candy sim --config ./my-levels.yaml --difficulty hard
  candy sim --save --skin bubble`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().IntVar(&flagSimTurns, "turns", 1000, "Stop after this many swaps")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record level results and the final score")
	simCmd.Flags().StringVar(&flagSimSkin, "skin", "candy", "Skin the saved results belong to")
}

// simResult summarizes one autoplay run.
type simResult struct {
	Levels []m3.LevelOutcome
	Total  int
	Turns  int
	Won    bool
	Stuck  bool // no productive swap was left
}

// autoplay runs a session with no delays until it ends, gets stuck or
// reaches maxTurns swaps. onLevel is called for every finished level.
func autoplay(ctx context.Context, opts m3.Options, maxTurns int, onLevel func(m3.LevelOutcome)) (simResult, error) {
	var res simResult
	opts.Pacer = m3.NoDelay{}
	opts.OnLevelEnd = func(o m3.LevelOutcome) {
		res.Levels = append(res.Levels, o)
		if onLevel != nil {
			onLevel(o)
		}
	}

	s, err := m3.NewSession(opts)
	if err != nil {
		return res, err
	}
	if err := s.Start(); err != nil {
		return res, err
	}
	s.Settle(ctx)

	for res.Turns < maxTurns && s.Phase() == m3.PhasePlaying {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		mv, ok := s.Hint()
		if !ok {
			res.Stuck = true
			break
		}
		if _, err := s.Swap(ctx, mv.From, mv.To); err != nil {
			return res, fmt.Errorf("swap %v-%v: %w", mv.From, mv.To, err)
		}
		res.Turns++
	}

	snap := s.Snapshot()
	res.Total = snap.TotalScore
	res.Won = snap.Won
	return res, nil
}

// levelRecorder turns finished levels into stored results and carries the
// running score across them.
type levelRecorder struct {
	skin  string
	seed  int64
	total int
}

func (r *levelRecorder) result(o m3.LevelOutcome, at time.Time) registry.LevelResultData {
	r.total += o.Score
	return registry.LevelResultData{
		GameID:     r.skin,
		Level:      o.Level.ID,
		LevelName:  o.Level.Name,
		Score:      o.Score,
		TotalScore: r.total,
		MovesUsed:  o.Moves,
		Cleared:    o.Cleared,
		Seed:       r.seed,
		FinishedAt: at,
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "sim")

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Logger = logger

	var store *storage.Store
	if flagSimSave {
		if !registry.Exists(flagSimSkin) {
			fmt.Fprintf(os.Stderr, "Error: unknown skin %q\n", flagSimSkin)
			os.Exit(1)
		}
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Autoplay (%s, seed %d)\n\n", preset, seed)
	rec := &levelRecorder{skin: flagSimSkin, seed: seed}
	res, err := autoplay(ctx, opts, flagSimTurns, func(o m3.LevelOutcome) {
		result := "failed"
		if o.Cleared {
			result = "cleared"
		}
		fmt.Printf("  level %d %-16s %-7s score %5d/%-5d moves %d\n",
			o.Level.ID, o.Level.Name, result, o.Score, o.Level.TargetScore, o.Moves)

		if store == nil {
			return
		}
		if err := store.SaveLevelResult(rec.result(o, time.Now())); err != nil {
			logger.Warn("cannot save level result", "level", o.Level.ID, "error", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	switch {
	case res.Won:
		fmt.Printf("All levels cleared in %d swaps, total score %d\n", res.Turns, res.Total)
	case res.Stuck:
		fmt.Printf("Stuck with no productive swap after %d swaps, total score %d\n", res.Turns, res.Total)
	default:
		fmt.Printf("Stopped after %d swaps, total score %d\n", res.Turns, res.Total)
	}

	if store != nil && res.Total > 0 {
		if _, err := store.SaveScore(flagSimSkin, res.Total); err != nil {
			logger.Warn("cannot save score", "error", err)
		}
	}
}
