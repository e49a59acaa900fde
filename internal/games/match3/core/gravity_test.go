package core

import (
	"math/rand"
	"testing"
)

func TestCollapseColumn(t *testing.T) {
	b := MustParseBoard(
		"R",
		"G",
		"B",
		"Y",
	)
	b.At(P(1, 0)).Matched = true
	b.At(P(3, 0)).Matched = true
	top, third := b.At(P(0, 0)).ID, b.At(P(2, 0)).ID

	got := Collapse(b)

	if got.String() != ".\n.\nR\nB" {
		t.Errorf("Collapse() =\n%s\nwant\n.\n.\nR\nB", got)
	}
	if got.At(P(2, 0)).ID != top || got.At(P(3, 0)).ID != third {
		t.Error("Collapse() did not keep token identity and order")
	}
	if !got.At(P(2, 0)).Animating || !got.At(P(3, 0)).Animating {
		t.Error("moved tokens should be flagged Animating")
	}
}

func TestCollapseUnmovedNotAnimating(t *testing.T) {
	b := MustParseBoard("R", "G", "B")
	b.At(P(0, 0)).Matched = true

	got := Collapse(b)
	if got.At(P(2, 0)).Animating || got.At(P(1, 0)).Animating {
		t.Error("tokens that did not move should not be Animating")
	}
	if got.At(P(0, 0)) != nil {
		t.Error("top cell should be empty")
	}
}

func TestCollapseConservesTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gen := NewGenerator(rng, nil, 0)

	for trial := range 50 {
		b := gen.Refill(NewBoard(6, 5))
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				b.Cells[r][c].Matched = rng.Intn(3) == 0
			}
		}

		got := Collapse(b)
		for c := 0; c < b.Cols; c++ {
			var want []string
			for _, tok := range b.ColumnTokens(c) {
				if !tok.Matched {
					want = append(want, tok.ID)
				}
			}
			col := got.ColumnTokens(c)
			if len(col) != len(want) {
				t.Fatalf("trial %d col %d: %d tokens after collapse, want %d", trial, c, len(col), len(want))
			}
			for i := range col {
				if col[i].ID != want[i] {
					t.Fatalf("trial %d col %d: order changed at %d", trial, c, i)
				}
				if col[i].Matched {
					t.Fatalf("trial %d col %d: survivor still marked", trial, c)
				}
			}
			// Survivors sit at the bottom.
			for r := 0; r < b.Rows-len(want); r++ {
				if got.At(P(r, c)) != nil {
					t.Fatalf("trial %d col %d: gap above row %d not empty", trial, c, r)
				}
			}
		}
	}
}

func TestDetectCollapseRefillScenario(t *testing.T) {
	// Five rows, one column: A A A B C.
	b := MustParseBoard("R", "R", "R", "G", "B")
	bID, cID := b.At(P(3, 0)).ID, b.At(P(4, 0)).ID

	res := Detect(b, DefaultRules())
	if !res.HasMatches || res.MatchCount != 1 {
		t.Fatalf("Detect() = %v matches (count %d), want one", res.HasMatches, res.MatchCount)
	}
	if len(res.Runs) != 1 || res.Runs[0].Start != P(0, 0) || res.Runs[0].Length != 3 {
		t.Fatalf("Runs = %+v, want one run of 3 at rows 0-2", res.Runs)
	}
	for r := 0; r < 3; r++ {
		if !res.Marked.At(P(r, 0)).Matched {
			t.Errorf("row %d not marked", r)
		}
	}

	collapsed := Collapse(res.Marked)
	if collapsed.String() != ".\n.\n.\nG\nB" {
		t.Fatalf("Collapse() =\n%s\nwant\n.\n.\n.\nG\nB", collapsed)
	}
	if collapsed.At(P(3, 0)).ID != bID || collapsed.At(P(4, 0)).ID != cID {
		t.Error("B and C should keep their identity")
	}

	gen := NewGenerator(rand.New(rand.NewSource(1)), nil, 0)
	filled := gen.Refill(collapsed)
	if !filled.IsFull() {
		t.Fatal("Refill() left empty cells")
	}
	for r := 0; r < 3; r++ {
		if !filled.At(P(r, 0)).New {
			t.Errorf("refilled row %d not flagged New", r)
		}
	}
	if filled.At(P(3, 0)).ID != bID || filled.At(P(3, 0)).New {
		t.Error("Refill() touched an occupied cell")
	}
	if collapsed.EmptyCount() != 3 {
		t.Error("Refill() mutated its input")
	}
}
