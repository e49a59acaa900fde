// Package config provides YAML-based configuration loading for the match-3
// game: levels, token kinds, scoring rules and animation pacing.
package config

import (
	"fmt"
	"time"

	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Kinds      []string         `yaml:"kinds"` // kind names or letters; empty means all six
	Generation GenerationConfig `yaml:"generation"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Levels     LevelsConfig     `yaml:"levels"`
}

// GenerationConfig controls board creation.
type GenerationConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// ScoringConfig controls match scoring.
type ScoringConfig struct {
	Overlap      string `yaml:"overlap"` // "once" or "per_run"
	KeepSpecials bool   `yaml:"keep_specials"`
}

// PacingConfig holds animation delays in milliseconds.
type PacingConfig struct {
	SwapMs    int `yaml:"swap_ms"`
	MatchMs   int `yaml:"match_ms"`
	GravityMs int `yaml:"gravity_ms"`
	RefillMs  int `yaml:"refill_ms"`
	IntroMs   int `yaml:"intro_ms"`
}

// LevelsConfig holds the level table.
type LevelsConfig struct {
	Strict bool          `yaml:"strict"` // unknown level IDs fail instead of falling back to the first
	List   []LevelConfig `yaml:"list"`
}

// LevelConfig is one level as written in YAML.
type LevelConfig struct {
	ID               int    `yaml:"id"`
	Name             string `yaml:"name"`
	Rows             int    `yaml:"rows"`
	Cols             int    `yaml:"cols"`
	TargetScore      int    `yaml:"target_score"`
	MoveLimit        int    `yaml:"move_limit"`
	SpecialThreshold int    `yaml:"special_threshold"`
}

// ValidationError reports a config value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the config and returns the first problem found.
func (c Match3Config) Validate() error {
	if _, err := c.EngineKinds(); err != nil {
		return err
	}
	if len(c.Kinds) == 1 {
		return ValidationError{Field: "kinds", Message: "need at least two kinds"}
	}
	if c.Generation.MaxAttempts < 0 {
		return ValidationError{Field: "generation.max_attempts", Message: "must not be negative"}
	}
	if _, ok := m3.ParseOverlapPolicy(c.Scoring.Overlap); !ok {
		return ValidationError{Field: "scoring.overlap", Message: fmt.Sprintf("unknown policy %q (want once or per_run)", c.Scoring.Overlap)}
	}
	p := c.Pacing
	for _, f := range []struct {
		name string
		ms   int
	}{
		{"swap_ms", p.SwapMs}, {"match_ms", p.MatchMs}, {"gravity_ms", p.GravityMs},
		{"refill_ms", p.RefillMs}, {"intro_ms", p.IntroMs},
	} {
		if f.ms < 0 {
			return ValidationError{Field: "pacing." + f.name, Message: "must not be negative"}
		}
	}
	if err := m3.LevelSet(c.EngineLevels()).Validate(); err != nil {
		return ValidationError{Field: "levels.list", Message: err.Error()}
	}
	return nil
}

// EngineKinds parses the configured kinds. An empty list yields nil.
func (c Match3Config) EngineKinds() ([]m3.Kind, error) {
	var kinds []m3.Kind
	seen := make(map[m3.Kind]bool)
	for _, name := range c.Kinds {
		k, ok := m3.ParseKind(name)
		if !ok {
			return nil, ValidationError{Field: "kinds", Message: fmt.Sprintf("unknown kind %q", name)}
		}
		if seen[k] {
			return nil, ValidationError{Field: "kinds", Message: fmt.Sprintf("duplicate kind %q", name)}
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// EngineLevels converts the level table for the engine.
func (c Match3Config) EngineLevels() []m3.LevelConfig {
	levels := make([]m3.LevelConfig, 0, len(c.Levels.List))
	for _, l := range c.Levels.List {
		levels = append(levels, m3.LevelConfig{
			ID:               l.ID,
			Name:             l.Name,
			Rows:             l.Rows,
			Cols:             l.Cols,
			TargetScore:      l.TargetScore,
			MoveLimit:        l.MoveLimit,
			SpecialThreshold: l.SpecialThreshold,
		})
	}
	return levels
}

// Delays converts the pacing section to durations.
func (p PacingConfig) Delays() m3.Delays {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return m3.Delays{
		Swap:    ms(p.SwapMs),
		Match:   ms(p.MatchMs),
		Gravity: ms(p.GravityMs),
		Refill:  ms(p.RefillMs),
		Intro:   ms(p.IntroMs),
	}
}

// Options builds engine session options from the config.
// Collaborators (sounder, pacer, logger, RNG) are left for the caller.
func (c Match3Config) Options() (m3.Options, error) {
	if err := c.Validate(); err != nil {
		return m3.Options{}, err
	}
	kinds, _ := c.EngineKinds()
	overlap, _ := m3.ParseOverlapPolicy(c.Scoring.Overlap)
	return m3.Options{
		Levels:        c.EngineLevels(),
		Kinds:         kinds,
		MaxAttempts:   c.Generation.MaxAttempts,
		Overlap:       overlap,
		KeepSpecials:  c.Scoring.KeepSpecials,
		Delays:        c.Pacing.Delays(),
		LevelFallback: !c.Levels.Strict,
	}, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyMatch3Preset adjusts move limits and targets for a difficulty preset.
// Easy grants five extra moves and lowers targets by a fifth; hard does the opposite.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	var moves, pct int
	switch preset {
	case DifficultyEasy:
		moves, pct = 5, -20
	case DifficultyHard:
		moves, pct = -5, 20
	default:
		return
	}
	for i := range cfg.Levels.List {
		l := &cfg.Levels.List[i]
		l.MoveLimit = max(1, l.MoveLimit+moves)
		l.TargetScore = max(1, l.TargetScore+l.TargetScore*pct/100)
	}
}
