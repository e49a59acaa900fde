package core

import (
	"math/rand"
	"testing"
)

func TestFindMoves(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  []Move
	}{
		{
			name:  "horizontal completion",
			board: []string{"RGRR"},
			want:  []Move{{From: P(0, 0), To: P(0, 1)}},
		},
		{
			name: "vertical completion",
			board: []string{
				"BG",
				"RB",
				"BY",
			},
			want: []Move{{From: P(1, 0), To: P(1, 1)}},
		},
		{
			name:  "dead board",
			board: []string{"RGB", "GBR"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.board...)
			got := FindMoves(b)
			if len(got) != len(tt.want) {
				t.Fatalf("FindMoves() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("move %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if HasMoves(b) != (len(tt.want) > 0) {
				t.Errorf("HasMoves() = %v, want %v", HasMoves(b), len(tt.want) > 0)
			}
		})
	}
}

func TestFindMovesAgreesWithDetect(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		gen := NewGenerator(rand.New(rand.NewSource(seed)), nil, 0)
		b := gen.Create(7, 7)
		found := make(map[Move]bool)
		for _, mv := range FindMoves(b) {
			found[mv] = true
		}

		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				for _, to := range []Pos{P(r, c+1), P(r+1, c)} {
					if !b.InBounds(to) {
						continue
					}
					swapped, err := b.Swap(P(r, c), to)
					if err != nil {
						t.Fatal(err)
					}
					mv := Move{From: P(r, c), To: to}
					if HasMatch(swapped) != found[mv] {
						t.Fatalf("seed %d move %+v: HasMatch = %v, FindMoves = %v", seed, mv, HasMatch(swapped), found[mv])
					}
				}
			}
		}
	}
}
