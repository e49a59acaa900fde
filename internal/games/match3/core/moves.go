package core

// Move is a swap of two adjacent cells.
type Move struct {
	From, To Pos
}

// FindMoves returns every adjacent swap that would produce a match,
// scanning row-major and trying the right then the lower neighbor.
func FindMoves(b *Board) []Move {
	var moves []Move
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			from := P(r, c)
			for _, to := range []Pos{P(r, c+1), P(r+1, c)} {
				if swapMatches(b, from, to) {
					moves = append(moves, Move{From: from, To: to})
				}
			}
		}
	}
	return moves
}

// HasMoves reports whether at least one productive swap exists.
func HasMoves(b *Board) bool {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if swapMatches(b, P(r, c), P(r, c+1)) || swapMatches(b, P(r, c), P(r+1, c)) {
				return true
			}
		}
	}
	return false
}

// swapMatches reports whether swapping from and to creates a run through
// either cell.
func swapMatches(b *Board, from, to Pos) bool {
	if !b.InBounds(to) {
		return false
	}
	x, y := b.At(from), b.At(to)
	if x == nil || y == nil || x.Kind == y.Kind {
		return false
	}
	kindAt := func(p Pos) (Kind, bool) {
		switch p {
		case from:
			return y.Kind, true
		case to:
			return x.Kind, true
		}
		t := b.At(p)
		if t == nil {
			return 0, false
		}
		return t.Kind, true
	}
	return lineThrough(from, kindAt) || lineThrough(to, kindAt)
}

// lineThrough reports whether the cell at p is part of a horizontal or
// vertical run of MinRunLength under the kind lookup.
func lineThrough(p Pos, kindAt func(Pos) (Kind, bool)) bool {
	k, ok := kindAt(p)
	if !ok {
		return false
	}
	count := func(dr, dc int) int {
		n := 0
		for q := P(p.Row+dr, p.Col+dc); ; q = P(q.Row+dr, q.Col+dc) {
			qk, ok := kindAt(q)
			if !ok || qk != k {
				return n
			}
			n++
		}
	}
	return 1+count(0, -1)+count(0, 1) >= MinRunLength ||
		1+count(-1, 0)+count(1, 0) >= MinRunLength
}
