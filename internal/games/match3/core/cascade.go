package core

import "time"

// StepKind identifies the board commit produced by one Advance call.
type StepKind uint8

const (
	StepIdle       StepKind = iota // nothing in flight
	StepSwapped                    // two cells exchanged
	StepMatched                    // runs marked and scored
	StepCollapsed                  // gravity applied
	StepRefilled                   // empty cells filled
	StepStabilized                 // New flags cleared
	StepReverted                   // unproductive swap exchanged back
	StepSettled                    // turn finished, board unlocked
)

func (k StepKind) String() string {
	switch k {
	case StepIdle:
		return "idle"
	case StepSwapped:
		return "swapped"
	case StepMatched:
		return "matched"
	case StepCollapsed:
		return "collapsed"
	case StepRefilled:
		return "refilled"
	case StepStabilized:
		return "stabilized"
	case StepReverted:
		return "reverted"
	case StepSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Step describes one observable transition of the board.
type Step struct {
	Kind       StepKind
	Board      *Board
	Match      *MatchResult // set on StepMatched
	Combo      int
	ScoreDelta int

	// Delay is how long presentation should wait before the next Advance.
	Delay time.Duration

	// Swap is set on the StepSettled that ends a swap turn.
	Swap *SwapResult
}

// SwapResult reports the outcome of a swap turn.
type SwapResult struct {
	From, To Pos
	Success  bool
}

type cascadeStage uint8

const (
	stageDetect cascadeStage = iota
	stageCollapse
	stageRefill
	stageStabilize
	stageDone
)

// Cascade resolves a board one commit at a time:
// detect, collapse, refill, stabilize, and again until no run remains.
type Cascade struct {
	board *Board
	gen   *Generator
	rules Rules

	stage   cascadeStage
	combo   int
	chain   int
	score   int
	matched bool
}

// NewCascade prepares a cascade over b. The board is not copied; callers
// hand over ownership.
func NewCascade(b *Board, gen *Generator, rules Rules) *Cascade {
	return &Cascade{board: b, gen: gen, rules: rules}
}

// Next performs the next commit. After the cascade settles it keeps
// returning StepIdle.
func (c *Cascade) Next() Step {
	switch c.stage {
	case stageDetect:
		res := Detect(c.board, c.rules)
		if !res.HasMatches {
			c.stage = stageDone
			c.combo = 0
			return Step{Kind: StepSettled, Board: c.board}
		}
		board := res.Marked
		if c.rules.KeepSpecials && len(res.Specials) > 0 {
			board = ApplySpecials(board, res.Specials)
		}
		c.board = board
		c.combo++
		c.chain++
		c.score += res.ScoreDelta
		c.matched = true
		c.stage = stageCollapse
		return Step{
			Kind:       StepMatched,
			Board:      board,
			Match:      &res,
			Combo:      c.combo,
			ScoreDelta: res.ScoreDelta,
		}

	case stageCollapse:
		c.board = Collapse(c.board)
		c.stage = stageRefill
		return Step{Kind: StepCollapsed, Board: c.board, Combo: c.combo}

	case stageRefill:
		filled := c.gen.Refill(c.board)
		filled.ClearFlags(FlagAnimating)
		c.board = filled
		c.stage = stageStabilize
		return Step{Kind: StepRefilled, Board: c.board, Combo: c.combo}

	case stageStabilize:
		stable := c.board.Clone()
		stable.ClearFlags(FlagNew | FlagAnimating)
		c.board = stable
		c.stage = stageDetect
		return Step{Kind: StepStabilized, Board: c.board, Combo: c.combo}
	}
	return Step{Kind: StepIdle, Board: c.board}
}

// Run drives the cascade to completion and returns the final board.
func (c *Cascade) Run() *Board {
	for !c.Done() {
		c.Next()
	}
	return c.board
}

// Done reports whether the cascade has settled.
func (c *Cascade) Done() bool { return c.stage == stageDone }

// Board returns the latest committed board.
func (c *Cascade) Board() *Board { return c.board }

// Matched reports whether any run was found during the cascade.
func (c *Cascade) Matched() bool { return c.matched }

// Combo returns the current combo; it drops to 0 once the cascade settles.
func (c *Cascade) Combo() int { return c.combo }

// Chain returns the number of matching steps so far.
func (c *Cascade) Chain() int { return c.chain }

// Score returns the points accumulated by the cascade.
func (c *Cascade) Score() int { return c.score }
