package match3

import (
	"io"
	"sync"

	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

var (
	bellMu  sync.Mutex
	bellOut io.Writer = io.Discard
)

// SetBellOutput sets where the terminal bell is written. The default discards it.
func SetBellOutput(w io.Writer) {
	bellMu.Lock()
	defer bellMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	bellOut = w
}

// Bell rings the terminal bell for level and game events.
// Matches stay quiet; a bell per cascade step is too much.
type Bell struct {
	out   io.Writer
	muted bool
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{out: w}
}

// Play implements core.Sounder.
func (b *Bell) Play(s m3.Sound) error {
	if b.muted || s == m3.SoundMatch {
		return nil
	}
	_, err := io.WriteString(b.out, "\a")
	return err
}

// SetMuted silences or restores the bell.
func (b *Bell) SetMuted(muted bool) { b.muted = muted }

// Muted reports whether the bell is silenced.
func (b *Bell) Muted() bool { return b.muted }

var _ m3.Sounder = (*Bell)(nil)
