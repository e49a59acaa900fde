package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TicksFor converts a duration in milliseconds into whole ticks, rounding up.
// Positive durations always take at least one tick.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 || c.TickRate <= 0 {
		return 0
	}
	return (ms*c.TickRate + 999) / 1000
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with every level cleared
	Paused   bool // Whether the game is paused
	Level    int  // Current level, 0 if the game has none
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
