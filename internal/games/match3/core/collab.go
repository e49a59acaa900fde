package core

import (
	"context"
	"time"
)

// Sound is a sound effect requested by the session.
type Sound uint8

const (
	SoundMatch Sound = iota
	SoundLevelComplete
	SoundSuccess
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundMatch:
		return "match"
	case SoundLevelComplete:
		return "level-complete"
	case SoundSuccess:
		return "success"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sounder plays sound effects. Play must not block; errors are logged by
// the caller and otherwise ignored.
type Sounder interface {
	Play(s Sound) error
}

// SounderFunc adapts a function to Sounder.
type SounderFunc func(Sound) error

// Play calls f(s).
func (f SounderFunc) Play(s Sound) error { return f(s) }

// Silent is a Sounder that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Sound) error { return nil }

// Pacer waits between board commits so presentation can animate them.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepPacer waits in real time.
type SleepPacer struct{}

// Wait blocks for d or until ctx is done.
func (SleepPacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoDelay is a Pacer that never waits.
type NoDelay struct{}

// Wait returns immediately.
func (NoDelay) Wait(context.Context, time.Duration) error { return nil }

// Delays are the pauses after each kind of commit.
type Delays struct {
	Swap    time.Duration
	Match   time.Duration
	Gravity time.Duration
	Refill  time.Duration
	Intro   time.Duration
}

// DefaultDelays returns the reference animation timings.
func DefaultDelays() Delays {
	return Delays{
		Swap:    300 * time.Millisecond,
		Match:   400 * time.Millisecond,
		Gravity: 300 * time.Millisecond,
		Refill:  300 * time.Millisecond,
		Intro:   500 * time.Millisecond,
	}
}
