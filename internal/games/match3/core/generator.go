package core

import (
	"math/rand"
	"time"
)

// DefaultMaxAttempts bounds the regeneration passes of Create.
const DefaultMaxAttempts = 5

// Source is the random source used for kind selection.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator produces tokens, fresh boards and refills.
type Generator struct {
	rng         Source
	kinds       []Kind
	maxAttempts int
}

// NewGenerator creates a generator drawing from kinds.
// A nil rng uses a time-seeded source; empty kinds means AllKinds.
func NewGenerator(rng Source, kinds []Kind, maxAttempts int) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(kinds) == 0 {
		kinds = AllKinds()
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		rng:         rng,
		kinds:       append([]Kind(nil), kinds...),
		maxAttempts: maxAttempts,
	}
}

// Kinds returns the kinds this generator draws from.
func (g *Generator) Kinds() []Kind {
	return append([]Kind(nil), g.kinds...)
}

// Token returns a new token of a uniformly random kind.
func (g *Generator) Token() *Token {
	return NewToken(g.kinds[g.rng.Intn(len(g.kinds))])
}

// Create returns a full rows x cols board with no 3+ run.
// Cells are chosen so they do not complete a run with the two cells to the
// left or above. Any run left over (only possible with fewer than three
// kinds) is regenerated up to maxAttempts times, after which the board is
// accepted as is.
func (g *Generator) Create(rows, cols int) *Board {
	b := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.Cells[r][c] = NewToken(g.pick(b, P(r, c)))
		}
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		runs := FindRuns(b)
		if len(runs) == 0 {
			break
		}
		for _, run := range runs {
			for _, p := range run.Cells() {
				b.Cells[p.Row][p.Col] = NewToken(g.pick(b, p))
			}
		}
	}
	return b
}

// pick chooses a kind for p that avoids completing a run with the two
// cells on either side of it. With every kind excluded it falls back to
// the full set.
func (g *Generator) pick(b *Board, p Pos) Kind {
	allowed := make([]Kind, 0, len(g.kinds))
	for _, k := range g.kinds {
		if !completesRun(b, p, k) {
			allowed = append(allowed, k)
		}
	}
	if len(allowed) == 0 {
		allowed = g.kinds
	}
	return allowed[g.rng.Intn(len(allowed))]
}

// completesRun reports whether placing k at p would form a 3-run with
// already placed neighbors.
func completesRun(b *Board, p Pos, k Kind) bool {
	same := func(dr, dc int) bool {
		t := b.At(P(p.Row+dr, p.Col+dc))
		return t != nil && t.Kind == k
	}
	switch {
	case same(0, -1) && same(0, -2),
		same(0, 1) && same(0, 2),
		same(0, -1) && same(0, 1),
		same(-1, 0) && same(-2, 0),
		same(1, 0) && same(2, 0),
		same(-1, 0) && same(1, 0):
		return true
	}
	return false
}

// Refill returns a copy of b with every empty cell filled by a new token
// of uniformly random kind. No anti-match guarantee applies.
func (g *Generator) Refill(b *Board) *Board {
	next := b.Clone()
	for r := 0; r < next.Rows; r++ {
		for c := 0; c < next.Cols; c++ {
			if next.Cells[r][c] == nil {
				next.Cells[r][c] = g.Token()
			}
		}
	}
	return next
}
