package core

import (
	"math/rand"
	"testing"
)

func TestCreateHasNoMatches(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{3, 3}, {8, 8}, {9, 9}, {10, 10}, {1, 12}, {12, 1},
	}
	kindSets := [][]Kind{
		AllKinds(),
		{KindRed, KindGreen, KindBlue},
	}

	for seed := int64(1); seed <= 40; seed++ {
		for _, kinds := range kindSets {
			gen := NewGenerator(rand.New(rand.NewSource(seed)), kinds, 0)
			for _, sz := range sizes {
				b := gen.Create(sz.rows, sz.cols)
				if !b.IsFull() {
					t.Fatalf("seed %d %dx%d: board has empty cells", seed, sz.rows, sz.cols)
				}
				if HasMatch(b) {
					t.Fatalf("seed %d %dx%d kinds %d: board has a run\n%s", seed, sz.rows, sz.cols, len(kinds), b)
				}
			}
		}
	}
}

func TestCreateFlagsNew(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)), nil, 0)
	b := gen.Create(4, 4)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if !b.At(P(r, c)).New {
				t.Fatalf("cell %s not flagged New", P(r, c))
			}
		}
	}
}

func TestCreateTerminatesWithTwoKinds(t *testing.T) {
	// Two kinds cannot always avoid runs; Create must still return a full board.
	gen := NewGenerator(rand.New(rand.NewSource(5)), []Kind{KindRed, KindBlue}, 2)
	b := gen.Create(6, 6)
	if !b.IsFull() {
		t.Error("Create() returned a board with empty cells")
	}
}

func TestCreateDeterministicForSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42)), nil, 0).Create(8, 8)
	b := NewGenerator(rand.New(rand.NewSource(42)), nil, 0).Create(8, 8)
	if !a.SameKinds(b) {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", a, b)
	}
}

func TestRefillUsesOnlyConfiguredKinds(t *testing.T) {
	kinds := []Kind{KindYellow, KindPurple}
	gen := NewGenerator(rand.New(rand.NewSource(9)), kinds, 0)
	b := gen.Refill(NewBoard(5, 5))

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			k := b.At(P(r, c)).Kind
			if k != KindYellow && k != KindPurple {
				t.Fatalf("cell %s has kind %v", P(r, c), k)
			}
		}
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	gen := NewGenerator(nil, nil, 0)
	if got := len(gen.Kinds()); got != int(KindCount) {
		t.Errorf("len(Kinds()) = %d, want %d", got, KindCount)
	}
	if gen.maxAttempts != DefaultMaxAttempts {
		t.Errorf("maxAttempts = %d, want %d", gen.maxAttempts, DefaultMaxAttempts)
	}
}
