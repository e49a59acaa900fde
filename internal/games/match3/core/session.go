package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the lifecycle state of a session.
type Phase string

const (
	PhaseReady   Phase = "ready"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// LevelOutcome is reported when a level runs out of moves.
type LevelOutcome struct {
	Level   LevelConfig
	Score   int
	Moves   int
	Cleared bool // score reached the target
	Final   bool // the session ended with this level
}

// Options configures a Session.
type Options struct {
	Levels      []LevelConfig
	Kinds       []Kind // empty means AllKinds
	Rand        Source // nil means time-seeded
	MaxAttempts int    // board creation retries; <= 0 means DefaultMaxAttempts

	Overlap      OverlapPolicy
	KeepSpecials bool

	Sounds Sounder
	Pacer  Pacer
	Delays Delays
	Logger *log.Logger

	// LevelFallback maps an unknown level ID to the first level instead
	// of failing with ErrUnknownLevel.
	LevelFallback bool

	OnLevelEnd func(LevelOutcome)
}

type turnKind uint8

const (
	turnSwap turnKind = iota
	turnResolve
)

// turn is the swap or resolve currently in flight.
type turn struct {
	kind      turnKind
	from, to  Pos
	cascade   *Cascade
	reverting bool
}

// Session owns the board and drives levels, moves and score.
// It is not safe for concurrent use; all calls must come from one goroutine.
type Session struct {
	levels       LevelSet
	gen          *Generator
	overlap      OverlapPolicy
	keepSpecials bool
	sounds       Sounder
	pacer        Pacer
	delays       Delays
	logger       *log.Logger
	fallback     bool
	onLevelEnd   func(LevelOutcome)

	phase     Phase
	level     LevelConfig
	board     *Board
	score     int
	total     int
	movesLeft int
	moves     int
	combo     int
	selected  *Pos
	locked    bool
	won       bool

	intro       bool // fresh board still flagged New
	nextDelay   time.Duration
	turn        *turn
	lastSwap    *SwapResult
	lastMatched bool
}

// NewSession validates opts and returns a session in PhaseReady.
func NewSession(opts Options) (*Session, error) {
	levels := LevelSet(opts.Levels)
	if err := levels.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	for _, k := range opts.Kinds {
		if !k.Valid() {
			return nil, ValidationError{
				Code:    "INVALID_KIND",
				Message: fmt.Sprintf("kind %d is not a base kind", k),
			}
		}
	}

	s := &Session{
		levels:       append(LevelSet(nil), levels...),
		gen:          NewGenerator(opts.Rand, opts.Kinds, opts.MaxAttempts),
		overlap:      opts.Overlap,
		keepSpecials: opts.KeepSpecials,
		sounds:       opts.Sounds,
		pacer:        opts.Pacer,
		delays:       opts.Delays,
		logger:       opts.Logger,
		fallback:     opts.LevelFallback,
		onLevelEnd:   opts.OnLevelEnd,
		phase:        PhaseReady,
	}
	if s.sounds == nil {
		s.sounds = Silent{}
	}
	if s.pacer == nil {
		s.pacer = SleepPacer{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	// Ready sessions still show a board.
	first := s.levels.First()
	s.level = first
	s.movesLeft = first.MoveLimit
	s.board = s.gen.Create(first.Rows, first.Cols)
	s.board.ClearFlags(FlagNew)
	return s, nil
}

// Start moves a ready session to playing and loads the first level.
func (s *Session) Start() error {
	if s.phase != PhaseReady {
		return fmt.Errorf("start from %s: %w", s.phase, ErrInvalidPhase)
	}
	s.phase = PhasePlaying
	s.total = 0
	s.won = false
	s.lastSwap = nil
	s.logger.Info("session started", "levels", len(s.levels))
	return s.LoadLevel(s.levels.First().ID)
}

// LoadLevel resets moves and score and creates a fresh board for level id.
func (s *Session) LoadLevel(id int) error {
	if s.locked {
		return fmt.Errorf("load level %d: %w", id, ErrBoardLocked)
	}
	lvl, ok := s.levels.Lookup(id)
	if !ok {
		if !s.fallback {
			return fmt.Errorf("load level %d: %w", id, ErrUnknownLevel)
		}
		lvl = s.levels.First()
		s.logger.Warn("unknown level, using first level", "requested", id, "level", lvl.ID)
	}

	s.level = lvl
	s.movesLeft = lvl.MoveLimit
	s.moves = 0
	s.score = 0
	s.combo = 0
	s.selected = nil
	s.board = s.gen.Create(lvl.Rows, lvl.Cols)
	s.intro = true
	s.nextDelay = s.delays.Intro
	s.logger.Debug("level loaded", "level", lvl.ID, "rows", lvl.Rows, "cols", lvl.Cols,
		"target", lvl.TargetScore, "moves", lvl.MoveLimit)
	return nil
}

// Restart returns the session to ready. Score is reset by the next Start.
func (s *Session) Restart() error {
	if s.locked {
		return fmt.Errorf("restart: %w", ErrBoardLocked)
	}
	if s.phase == PhaseReady {
		return nil
	}
	s.phase = PhaseReady
	s.selected = nil
	s.board.ClearFlags(FlagSelected)
	return nil
}

// SelectCell applies a player selection and reports whether anything changed.
// Selecting an adjacent cell to the current selection begins a swap; the
// caller then drives it with Advance or Settle.
func (s *Session) SelectCell(row, col int) bool {
	if s.locked || s.phase != PhasePlaying {
		return false
	}
	p := P(row, col)
	t := s.board.At(p)
	if t == nil {
		return false
	}

	if s.selected == nil {
		s.selected = &p
		t.Selected = true
		return true
	}

	prev := *s.selected
	switch {
	case prev == p:
		s.selected = nil
		t.Selected = false
	case prev.Adjacent(p):
		if _, err := s.BeginSwap(prev, p); err != nil {
			s.logger.Warn("swap rejected", "from", prev, "to", p, "error", err)
			return false
		}
	default:
		if old := s.board.At(prev); old != nil {
			old.Selected = false
		}
		s.selected = &p
		t.Selected = true
	}
	return true
}

// BeginSwap locks the board and exchanges a and b. The rest of the turn is
// performed by Advance. Adjacency is the caller's concern.
func (s *Session) BeginSwap(a, b Pos) (Step, error) {
	if s.phase != PhasePlaying {
		return Step{}, fmt.Errorf("swap in %s: %w", s.phase, ErrInvalidPhase)
	}
	if s.locked {
		return Step{}, fmt.Errorf("swap: %w", ErrBoardLocked)
	}
	next, err := s.board.Swap(a, b)
	if err != nil {
		return Step{}, err
	}

	s.locked = true
	s.selected = nil
	s.intro = false
	next.ClearFlags(FlagSelected | FlagNew)
	s.board = next
	s.turn = &turn{
		kind:    turnSwap,
		from:    a,
		to:      b,
		cascade: NewCascade(next.Clone(), s.gen, s.rules()),
	}
	return s.commit(Step{Kind: StepSwapped}, s.delays.Swap), nil
}

// Swap performs a full swap turn, waiting on the pacer between commits.
// It reports whether the swap produced a match.
func (s *Session) Swap(ctx context.Context, a, b Pos) (bool, error) {
	if _, err := s.BeginSwap(a, b); err != nil {
		return false, err
	}
	s.Settle(ctx)
	return s.lastSwap != nil && s.lastSwap.Success, nil
}

// Resolve runs the cascade on the current board and reports whether any
// match occurred. A stable board returns false immediately.
func (s *Session) Resolve(ctx context.Context) (bool, error) {
	if s.locked {
		return false, fmt.Errorf("resolve: %w", ErrBoardLocked)
	}
	s.locked = true
	s.turn = &turn{
		kind:    turnResolve,
		cascade: NewCascade(s.board.Clone(), s.gen, s.rules()),
	}
	s.nextDelay = 0
	s.Settle(ctx)
	return s.lastMatched, nil
}

// Settle drives Advance until nothing is pending, waiting on the pacer
// between commits. Pacer failures are logged and the turn still completes.
func (s *Session) Settle(ctx context.Context) {
	warned := false
	for s.Pending() {
		if err := s.pacer.Wait(ctx, s.nextDelay); err != nil && !warned {
			s.logger.Warn("pacer wait failed, continuing without delay", "error", err)
			warned = true
		}
		s.Advance()
	}
}

// Pending reports whether Advance has work to do.
func (s *Session) Pending() bool {
	return s.turn != nil || s.intro
}

// NextDelay is the pause presentation should take before the next Advance.
func (s *Session) NextDelay() time.Duration {
	return s.nextDelay
}

// Advance performs the next board commit of the turn in flight.
func (s *Session) Advance() Step {
	t := s.turn
	if t == nil {
		if s.intro {
			s.intro = false
			s.board.ClearFlags(FlagNew)
			return s.commit(Step{Kind: StepStabilized}, 0)
		}
		return Step{Kind: StepIdle, Board: s.board.Clone()}
	}

	if t.reverting {
		return s.finishTurn(false)
	}

	step := t.cascade.Next()
	s.board = step.Board
	switch step.Kind {
	case StepMatched:
		s.score += step.ScoreDelta
		s.total += step.ScoreDelta
		s.combo = step.Combo
		s.play(SoundMatch)
		return s.commit(step, s.delays.Match)
	case StepCollapsed:
		return s.commit(step, s.delays.Gravity)
	case StepRefilled:
		return s.commit(step, s.delays.Refill)
	case StepStabilized:
		return s.commit(step, 0)
	}

	// Settled: no further runs.
	s.combo = 0
	if t.kind == turnSwap && !t.cascade.Matched() {
		back, err := s.board.Swap(t.from, t.to)
		if err != nil {
			// Coordinates were validated by BeginSwap.
			s.logger.Error("revert swap", "error", err)
			return s.finishTurn(false)
		}
		s.board = back
		t.reverting = true
		return s.commit(Step{Kind: StepReverted}, s.delays.Swap)
	}
	return s.finishTurn(t.cascade.Matched())
}

// finishTurn unlocks the board and books the move of a successful swap.
func (s *Session) finishTurn(matched bool) Step {
	t := s.turn
	s.turn = nil
	s.locked = false
	s.combo = 0
	s.lastMatched = matched

	step := Step{Kind: StepSettled}
	if t.kind == turnSwap {
		res := &SwapResult{From: t.from, To: t.to, Success: matched}
		s.lastSwap = res
		step.Swap = res
		if matched {
			s.decrementMoves()
		}
	}

	delay := time.Duration(0)
	if s.intro {
		delay = s.delays.Intro
	}
	return s.commit(step, delay)
}

// decrementMoves spends one move and ends or advances the level when
// none are left.
func (s *Session) decrementMoves() {
	s.movesLeft--
	s.moves++
	if s.movesLeft > 0 {
		return
	}

	outcome := LevelOutcome{
		Level:   s.level,
		Score:   s.score,
		Moves:   s.moves,
		Cleared: s.score >= s.level.TargetScore,
	}
	next, hasNext := s.levels.Next(s.level.ID)

	switch {
	case outcome.Cleared && hasNext:
		s.reportLevelEnd(outcome)
		s.play(SoundLevelComplete)
		if err := s.LoadLevel(next.ID); err != nil {
			s.logger.Error("advance level", "level", next.ID, "error", err)
		}
	case outcome.Cleared:
		outcome.Final = true
		s.phase = PhaseEnded
		s.won = true
		s.reportLevelEnd(outcome)
		s.play(SoundSuccess)
	default:
		outcome.Final = true
		s.phase = PhaseEnded
		s.reportLevelEnd(outcome)
		s.play(SoundGameOver)
	}
}

func (s *Session) reportLevelEnd(o LevelOutcome) {
	s.logger.Info("level ended", "level", o.Level.ID, "score", o.Score,
		"target", o.Level.TargetScore, "cleared", o.Cleared, "final", o.Final)
	if s.onLevelEnd != nil {
		s.onLevelEnd(o)
	}
}

// play requests a sound; failures never reach game logic.
func (s *Session) play(snd Sound) {
	if err := s.sounds.Play(snd); err != nil {
		s.logger.Warn("sound failed", "sound", snd, "error", err)
	}
}

// commit publishes the current board with the step and records the delay
// before the next Advance.
func (s *Session) commit(step Step, delay time.Duration) Step {
	step.Board = s.board.Clone()
	step.Delay = delay
	s.nextDelay = delay
	return step
}

func (s *Session) rules() Rules {
	return Rules{
		SpecialThreshold: s.level.SpecialThreshold,
		Overlap:          s.overlap,
		KeepSpecials:     s.keepSpecials,
	}
}

// Hint returns a productive swap on the current board, if any.
func (s *Session) Hint() (Move, bool) {
	if s.locked {
		return Move{}, false
	}
	moves := FindMoves(s.board)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[0], true
}

// CurrentLevel returns the level being played.
func (s *Session) CurrentLevel() LevelConfig {
	return s.level
}

// Levels returns the configured levels.
func (s *Session) Levels() LevelSet {
	return append(LevelSet(nil), s.levels...)
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Phase      Phase
	Board      *Board
	Level      LevelConfig
	Score      int
	TotalScore int
	MovesLeft  int
	Moves      int
	Combo      int
	Selected   *Pos
	Locked     bool
	Won        bool
	LastSwap   *SwapResult
}

// Snapshot returns a copy of the session state safe to keep.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Board:      s.board.Clone(),
		Level:      s.level,
		Score:      s.score,
		TotalScore: s.total,
		MovesLeft:  s.movesLeft,
		Moves:      s.moves,
		Combo:      s.combo,
		Locked:     s.locked,
		Won:        s.won,
	}
	if s.selected != nil {
		p := *s.selected
		snap.Selected = &p
	}
	if s.lastSwap != nil {
		r := *s.lastSwap
		snap.LastSwap = &r
	}
	return snap
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Locked reports whether a turn is in flight.
func (s *Session) Locked() bool { return s.locked }
