package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Match3Config
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if want := DefaultMatch3Config(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestDefaultLevelsMatchEngine(t *testing.T) {
	got := DefaultMatch3Config().EngineLevels()
	if !reflect.DeepEqual(got, m3.DefaultLevels()) {
		t.Errorf("EngineLevels() = %+v, want %+v", got, m3.DefaultLevels())
	}
}

func TestLoadMatch3FallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if len(cfg.Levels.List) != 5 {
		t.Errorf("len(Levels.List) = %d, want 5", len(cfg.Levels.List))
	}
}

func TestLoadMatch3UserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".candy", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := `
kinds: [R, G, B]
levels:
  list:
    - { id: 1, name: Tiny, rows: 4, cols: 4, target_score: 50, move_limit: 3 }
`
	if err := os.WriteFile(filepath.Join(dir, Match3File), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() error = %v", err)
	}
	if len(cfg.Levels.List) != 1 || cfg.Levels.List[0].Name != "Tiny" {
		t.Errorf("Levels.List = %+v, want the user level", cfg.Levels.List)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMatch3(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want not exist", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("levels: [oops"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadMatch3(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zero.yaml")
		data := "levels:\n  list:\n    - { id: 1, rows: 0, cols: 8, target_score: 10, move_limit: 5 }\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := LoadMatch3(path)
		var ve ValidationError
		if !errors.As(err, &ve) || ve.Field != "levels.list" {
			t.Errorf("error = %v, want levels.list validation error", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		field  string
	}{
		{"defaults", func(*Match3Config) {}, ""},
		{"empty kinds means all", func(c *Match3Config) { c.Kinds = nil }, ""},
		{"unknown kind", func(c *Match3Config) { c.Kinds = []string{"red", "teal"} }, "kinds"},
		{"duplicate kind", func(c *Match3Config) { c.Kinds = []string{"red", "R"} }, "kinds"},
		{"single kind", func(c *Match3Config) { c.Kinds = []string{"red"} }, "kinds"},
		{"negative attempts", func(c *Match3Config) { c.Generation.MaxAttempts = -1 }, "generation.max_attempts"},
		{"bad overlap", func(c *Match3Config) { c.Scoring.Overlap = "twice" }, "scoring.overlap"},
		{"negative delay", func(c *Match3Config) { c.Pacing.RefillMs = -5 }, "pacing.refill_ms"},
		{"no levels", func(c *Match3Config) { c.Levels.List = nil }, "levels.list"},
		{"duplicate level", func(c *Match3Config) { c.Levels.List[1].ID = 1 }, "levels.list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("Validate() = %v, want error on %s", err, tt.field)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Kinds = []string{"R", "g", "blue"}
	cfg.Scoring.Overlap = "per_run"
	cfg.Levels.Strict = true

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if want := []m3.Kind{m3.KindRed, m3.KindGreen, m3.KindBlue}; !reflect.DeepEqual(opts.Kinds, want) {
		t.Errorf("Kinds = %v, want %v", opts.Kinds, want)
	}
	if opts.Overlap != m3.OverlapScorePerRun {
		t.Errorf("Overlap = %v, want per_run", opts.Overlap)
	}
	if opts.LevelFallback {
		t.Error("strict levels should disable fallback")
	}
	if opts.Delays != m3.DefaultDelays() {
		t.Errorf("Delays = %+v, want %+v", opts.Delays, m3.DefaultDelays())
	}
	if opts.Delays.Match != 400*time.Millisecond {
		t.Errorf("Match delay = %v", opts.Delays.Match)
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		moves, goal int
	}{
		{DifficultyEasy, 20, 800},
		{DifficultyNormal, 15, 1000},
		{DifficultyHard, 10, 1200},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tt.preset)
			first := cfg.Levels.List[0]
			if first.MoveLimit != tt.moves || first.TargetScore != tt.goal {
				t.Errorf("level 1 = %d moves / %d target, want %d / %d",
					first.MoveLimit, first.TargetScore, tt.moves, tt.goal)
			}
		})
	}
}

func TestApplyMatch3PresetKeepsLevelsPlayable(t *testing.T) {
	cfg := DefaultMatch3Config()
	cfg.Levels.List[0].MoveLimit = 2
	ApplyMatch3Preset(&cfg, DifficultyHard)
	if cfg.Levels.List[0].MoveLimit != 1 {
		t.Errorf("MoveLimit = %d, want 1", cfg.Levels.List[0].MoveLimit)
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"": DifficultyNormal, "easy": DifficultyEasy, "hard": DifficultyHard,
	} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
