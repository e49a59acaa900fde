package core

import "fmt"

// LevelConfig describes one level. It is immutable once loaded.
type LevelConfig struct {
	ID               int
	Name             string
	Rows             int
	Cols             int
	TargetScore      int
	MoveLimit        int
	SpecialThreshold int
}

// DefaultLevels returns the reference level set.
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{ID: 1, Name: "Sugar Rush", Rows: 8, Cols: 8, TargetScore: 1000, MoveLimit: 15, SpecialThreshold: 4},
		{ID: 2, Name: "Lemon Drops", Rows: 8, Cols: 8, TargetScore: 2000, MoveLimit: 20, SpecialThreshold: 4},
		{ID: 3, Name: "Gumdrop Grove", Rows: 9, Cols: 9, TargetScore: 3000, MoveLimit: 25, SpecialThreshold: 4},
		{ID: 4, Name: "Toffee Towers", Rows: 9, Cols: 9, TargetScore: 4000, MoveLimit: 30, SpecialThreshold: 4},
		{ID: 5, Name: "Candy Castle", Rows: 10, Cols: 10, TargetScore: 5000, MoveLimit: 35, SpecialThreshold: 4},
	}
}

// Validate checks that the level can be played.
func (l LevelConfig) Validate() error {
	switch {
	case l.Rows < 1 || l.Cols < 1:
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("level %d: board %dx%d must be at least 1x1", l.ID, l.Rows, l.Cols),
		}
	case l.MoveLimit < 1:
		return ValidationError{
			Code:    "INVALID_MOVES",
			Message: fmt.Sprintf("level %d: move limit %d must be positive", l.ID, l.MoveLimit),
		}
	case l.TargetScore < 0:
		return ValidationError{
			Code:    "INVALID_TARGET",
			Message: fmt.Sprintf("level %d: target score %d must not be negative", l.ID, l.TargetScore),
		}
	case l.SpecialThreshold > 0 && l.SpecialThreshold < MinRunLength:
		return ValidationError{
			Code:    "INVALID_THRESHOLD",
			Message: fmt.Sprintf("level %d: special threshold %d below minimum run %d", l.ID, l.SpecialThreshold, MinRunLength),
		}
	}
	return nil
}

// LevelSet is an ordered list of levels addressed by ID.
type LevelSet []LevelConfig

// Validate checks every level and rejects duplicate IDs.
func (s LevelSet) Validate() error {
	if len(s) == 0 {
		return ErrNoLevels
	}
	seen := make(map[int]bool, len(s))
	for _, l := range s {
		if seen[l.ID] {
			return ValidationError{
				Code:    "DUPLICATE_LEVEL",
				Message: fmt.Sprintf("level id %d defined twice", l.ID),
			}
		}
		seen[l.ID] = true
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the level with the given ID.
func (s LevelSet) Lookup(id int) (LevelConfig, bool) {
	for _, l := range s {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// First returns the first level of the set.
func (s LevelSet) First() LevelConfig {
	if len(s) == 0 {
		return LevelConfig{}
	}
	return s[0]
}

// Next returns the level whose ID follows id.
func (s LevelSet) Next(id int) (LevelConfig, bool) {
	return s.Lookup(id + 1)
}
