// Package match3 adapts the match-3 rule engine to the arcade platform:
// cursor input, tick-based pacing of the resolution cascade, rendering and
// sound. The rules themselves live in match3/core.
package match3

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-arcade/internal/config"
	"github.com/vovakirdan/candy-arcade/internal/core"
	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
	"github.com/vovakirdan/candy-arcade/internal/registry"
)

const (
	hintMs    = 2000
	messageMs = 1500
)

// Package-level settings, applied when a game is reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
// Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty", "error", err)
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games and their sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one skin of the match-3 game.
type Game struct {
	skin    Skin
	rt      core.RuntimeConfig
	seed    int64
	session *m3.Session
	bell    *Bell
	saver   registry.LevelResultSaver
	log     *log.Logger

	cursor   m3.Pos
	wait     int // ticks before the next Advance
	tick     uint64
	paused   bool
	tooSmall bool
	levelID  int

	hint      *m3.Move
	hintTicks int
	message   string
	msgTicks  int
}

// New creates a game using the given skin.
func New(skin Skin) *Game {
	return &Game{skin: skin}
}

func init() {
	for _, s := range Skins() {
		registry.Register(s.ID, func() registry.Game {
			return New(s)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.skin.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.skin.Title }

// SetLevelResultSaver implements registry.LevelReporter.
func (g *Game) SetLevelResultSaver(s registry.LevelResultSaver) {
	g.saver = s
}

// Reset builds a fresh session from the current config and starts it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.log = logger.With("game", g.skin.ID)
	if g.bell == nil {
		bellMu.Lock()
		g.bell = NewBell(bellOut)
		bellMu.Unlock()
	}
	g.tick = 0
	g.paused = false
	g.hint = nil
	g.message = ""
	g.session = nil

	mcfg, err := config.LoadMatch3(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "error", err)
		mcfg = config.DefaultMatch3Config()
	}
	config.ApplyMatch3Preset(&mcfg, difficultyPreset)

	opts, err := mcfg.Options()
	if err != nil {
		g.log.Error("invalid config", "error", err)
		return
	}
	opts.Rand = rand.New(rand.NewSource(g.seed))
	opts.Sounds = g.bell
	opts.Pacer = m3.NoDelay{} // the tick loop does the waiting
	opts.Logger = g.log
	opts.OnLevelEnd = g.levelEnded

	s, err := m3.NewSession(opts)
	if err != nil {
		g.log.Error("cannot create session", "error", err)
		return
	}
	g.session = s
	g.start()
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		g.log.Error("cannot start session", "error", err)
		return
	}
	lvl := g.session.CurrentLevel()
	g.levelID = lvl.ID
	g.cursor = m3.P(lvl.Rows/2, lvl.Cols/2)
	g.wait = g.ticks(g.session.NextDelay())
	g.flash(lvl.Name)
	g.checkScreenSize()
}

// Session exposes the running session, nil if Reset failed.
func (g *Game) Session() *m3.Session { return g.session }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	g.checkScreenSize()

	if in.Has(core.ActionMute) {
		g.bell.SetMuted(!g.bell.Muted())
		if g.bell.Muted() {
			g.flash("Sound off")
		} else {
			g.flash("Sound on")
		}
	}

	if g.session.Phase() == m3.PhaseEnded {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.countdown()
	g.advance()
	g.moveCursor(in)

	switch {
	case in.Has(core.ActionConfirm):
		g.selectCursor()
	case in.Has(core.ActionBack):
		g.deselect()
	case in.Has(core.ActionHint):
		g.showHint()
	}

	return core.StepResult{State: g.State()}
}

// restart plays the same session again from level 1.
func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		g.log.Warn("restart rejected", "error", err)
		return
	}
	g.paused = false
	g.hint = nil
	g.start()
}

// advance commits the next cascade step once its delay has elapsed.
func (g *Game) advance() {
	if !g.session.Pending() {
		return
	}
	if g.wait > 0 {
		g.wait--
		return
	}

	step := g.session.Advance()
	switch step.Kind {
	case m3.StepMatched:
		if step.Combo > 1 {
			g.flash(fmt.Sprintf("Combo x%d!", step.Combo))
		}
	case m3.StepReverted:
		g.flash("No match")
	}

	if lvl := g.session.CurrentLevel(); lvl.ID != g.levelID {
		g.levelID = lvl.ID
		g.cursor = m3.P(lvl.Rows/2, lvl.Cols/2)
		g.flash(fmt.Sprintf("Level %d: %s", lvl.ID, lvl.Name))
	}
	g.wait = g.ticks(g.session.NextDelay())
}

func (g *Game) moveCursor(in core.InputFrame) {
	lvl := g.session.CurrentLevel()
	r, c := g.cursor.Row, g.cursor.Col
	switch {
	case in.Has(core.ActionUp):
		r--
	case in.Has(core.ActionDown):
		r++
	case in.Has(core.ActionLeft):
		c--
	case in.Has(core.ActionRight):
		c++
	}
	g.cursor = m3.P(core.Clamp(r, 0, lvl.Rows-1), core.Clamp(c, 0, lvl.Cols-1))
}

func (g *Game) selectCursor() {
	if !g.session.SelectCell(g.cursor.Row, g.cursor.Col) {
		return
	}
	if g.session.Locked() {
		g.hint = nil
		g.wait = g.ticks(g.session.NextDelay())
	}
}

func (g *Game) deselect() {
	if sel := g.session.Snapshot().Selected; sel != nil {
		g.session.SelectCell(sel.Row, sel.Col)
	}
}

func (g *Game) showHint() {
	mv, ok := g.session.Hint()
	if !ok {
		if !g.session.Locked() {
			g.flash("No moves left")
		}
		return
	}
	g.hint = &mv
	g.hintTicks = g.ticks(hintMs * time.Millisecond)
}

func (g *Game) countdown() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.msgTicks = max(1, g.ticks(messageMs*time.Millisecond))
}

// levelEnded records a finished level. Called by the session.
func (g *Game) levelEnded(o m3.LevelOutcome) {
	switch {
	case o.Cleared && !o.Final:
		g.flash("Level cleared!")
	case o.Cleared:
		g.flash("All levels cleared!")
	default:
		g.flash("Out of moves")
	}
	if g.saver == nil {
		return
	}

	total := o.Score
	if g.session != nil {
		total = g.session.Snapshot().TotalScore
	}
	err := g.saver.SaveLevelResult(registry.LevelResultData{
		GameID:     g.ID(),
		Level:      o.Level.ID,
		LevelName:  o.Level.Name,
		Score:      o.Score,
		TotalScore: total,
		MovesUsed:  o.Moves,
		Cleared:    o.Cleared,
		Seed:       g.seed,
		FinishedAt: time.Now(),
	})
	if err != nil {
		g.log.Warn("cannot save level result", "level", o.Level.ID, "error", err)
	}
}

func (g *Game) ticks(d time.Duration) int {
	return g.rt.TicksFor(int(d / time.Millisecond))
}

// checkScreenSize checks if the screen can hold the current level.
func (g *Game) checkScreenSize() {
	if g.session == nil {
		return
	}
	w, h := layoutSize(g.session.CurrentLevel())
	g.tooSmall = g.rt.ScreenW < w || g.rt.ScreenH < h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.TotalScore,
		GameOver: snap.Phase == m3.PhaseEnded,
		Won:      snap.Won,
		Paused:   g.paused || g.tooSmall,
		Level:    snap.Level.ID,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Select | H: Hint | M: Mute | P: Pause | Q: Quit"
}

// Resize implements registry.Resizable.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.checkScreenSize()
}
