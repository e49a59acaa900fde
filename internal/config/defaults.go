package config

import (
	_ "embed"

	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration.
// It mirrors defaults/match3.yaml and is used when the embedded file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	cfg := Match3Config{
		Generation: GenerationConfig{MaxAttempts: m3.DefaultMaxAttempts},
		Scoring:    ScoringConfig{Overlap: "once", KeepSpecials: true},
		Pacing: PacingConfig{
			SwapMs:    300,
			MatchMs:   400,
			GravityMs: 300,
			RefillMs:  300,
			IntroMs:   500,
		},
	}
	for _, k := range m3.AllKinds() {
		cfg.Kinds = append(cfg.Kinds, k.String())
	}
	for _, l := range m3.DefaultLevels() {
		cfg.Levels.List = append(cfg.Levels.List, LevelConfig{
			ID:               l.ID,
			Name:             l.Name,
			Rows:             l.Rows,
			Cols:             l.Cols,
			TargetScore:      l.TargetScore,
			MoveLimit:        l.MoveLimit,
			SpecialThreshold: l.SpecialThreshold,
		})
	}
	return cfg
}
