package core

// MinRunLength is the shortest run that counts as a match.
const MinRunLength = 3

// BasePoints is the score of one cell in a 3-run. Each extra cell in a run
// adds half of it to every cell of that run.
const BasePoints = 10

// Orientation is the axis of a run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of same-kind tokens of length >= MinRunLength.
type Run struct {
	Kind        Kind
	Start       Pos
	Length      int
	Orientation Orientation
}

// Cells returns the positions covered by the run, in scan order.
func (r Run) Cells() []Pos {
	out := make([]Pos, r.Length)
	for i := range out {
		if r.Orientation == Horizontal {
			out[i] = P(r.Start.Row, r.Start.Col+i)
		} else {
			out[i] = P(r.Start.Row+i, r.Start.Col)
		}
	}
	return out
}

// Middle returns the cell where a special token is proposed:
// start + (length-1) - length/2.
func (r Run) Middle() Pos {
	off := r.Length - 1 - r.Length/2
	if r.Orientation == Horizontal {
		return P(r.Start.Row, r.Start.Col+off)
	}
	return P(r.Start.Row+off, r.Start.Col)
}

// RunScore returns the points awarded per cell of a run of the given length.
func RunScore(length int) int {
	return BasePoints + BasePoints/2*(length-MinRunLength)
}

// OverlapPolicy decides how a cell shared by a row run and a column run is scored.
type OverlapPolicy uint8

const (
	// OverlapScoreOnce scores a cell only for the first run that marks it.
	OverlapScoreOnce OverlapPolicy = iota
	// OverlapScorePerRun scores a cell once for every run it belongs to.
	OverlapScorePerRun
)

func (p OverlapPolicy) String() string {
	if p == OverlapScorePerRun {
		return "per_run"
	}
	return "once"
}

// ParseOverlapPolicy parses "once" or "per_run".
func ParseOverlapPolicy(s string) (OverlapPolicy, bool) {
	switch s {
	case "", "once":
		return OverlapScoreOnce, true
	case "per_run", "per-run":
		return OverlapScorePerRun, true
	}
	return OverlapScoreOnce, false
}

// Rules parameterizes detection and resolution.
type Rules struct {
	SpecialThreshold int // minimum run length proposing a special; <= 0 disables
	Overlap          OverlapPolicy
	KeepSpecials     bool // materialize proposals on the board during a cascade
}

// DefaultRules returns the reference rules.
func DefaultRules() Rules {
	return Rules{
		SpecialThreshold: 4,
		Overlap:          OverlapScoreOnce,
		KeepSpecials:     true,
	}
}

// SpecialProposal is a special token suggested by a long run.
type SpecialProposal struct {
	Pos     Pos
	Kind    Kind
	Special Special
}

// MatchResult is the outcome of one detection pass.
type MatchResult struct {
	HasMatches bool
	Marked     *Board // clone of the input with run cells flagged Matched
	MatchCount int    // number of qualifying runs
	ScoreDelta int
	Specials   []SpecialProposal
	Runs       []Run
}

// FindRuns returns every qualifying run: all rows left to right first,
// then all columns top to bottom.
func FindRuns(b *Board) []Run {
	var runs []Run
	for r := 0; r < b.Rows; r++ {
		runs = scanLine(b, runs, P(r, 0), 0, 1, b.Cols, Horizontal)
	}
	for c := 0; c < b.Cols; c++ {
		runs = scanLine(b, runs, P(0, c), 1, 0, b.Rows, Vertical)
	}
	return runs
}

// scanLine appends the maximal runs found along one row or column.
func scanLine(b *Board, runs []Run, start Pos, dr, dc, n int, o Orientation) []Run {
	i := 0
	for i < n {
		first := b.Cells[start.Row+dr*i][start.Col+dc*i]
		if first == nil {
			i++
			continue
		}
		j := i + 1
		for j < n {
			t := b.Cells[start.Row+dr*j][start.Col+dc*j]
			if t == nil || t.Kind != first.Kind {
				break
			}
			j++
		}
		if j-i >= MinRunLength {
			runs = append(runs, Run{
				Kind:        first.Kind,
				Start:       P(start.Row+dr*i, start.Col+dc*i),
				Length:      j - i,
				Orientation: o,
			})
		}
		i = j
	}
	return runs
}

// HasMatch reports whether the board contains any qualifying run.
func HasMatch(b *Board) bool {
	return len(FindRuns(b)) > 0
}

// Detect marks every qualifying run on a clone of b and totals its score.
// The input board is not modified.
func Detect(b *Board, rules Rules) MatchResult {
	marked := b.Clone()
	marked.ClearFlags(FlagMatched)

	runs := FindRuns(marked)
	res := MatchResult{
		HasMatches: len(runs) > 0,
		Marked:     marked,
		MatchCount: len(runs),
		Runs:       runs,
	}

	for _, run := range runs {
		points := RunScore(run.Length)
		for _, p := range run.Cells() {
			t := marked.Cells[p.Row][p.Col]
			if t.Matched && rules.Overlap == OverlapScoreOnce {
				continue
			}
			t.Matched = true
			res.ScoreDelta += points
		}

		if rules.SpecialThreshold > 0 && run.Length >= rules.SpecialThreshold {
			special := SpecialStripedHorizontal
			if run.Orientation == Vertical {
				special = SpecialStripedVertical
			}
			res.Specials = append(res.Specials, SpecialProposal{
				Pos:     run.Middle(),
				Kind:    run.Kind,
				Special: special,
			})
		}
	}
	return res
}

// ApplySpecials returns a copy of a marked board where each proposal cell
// keeps its token, unmarked and tagged with the proposed special.
// When two proposals share a cell the first one wins.
func ApplySpecials(marked *Board, proposals []SpecialProposal) *Board {
	next := marked.Clone()
	for _, sp := range proposals {
		t := next.At(sp.Pos)
		if t == nil || !t.Matched {
			continue
		}
		t.Matched = false
		t.Special = sp.Special
	}
	return next
}
