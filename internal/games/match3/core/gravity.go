package core

// Collapse drops matched tokens and lets the rest fall to the bottom of
// their column, keeping their order. Cells above become empty.
// Tokens that changed row are flagged Animating.
func Collapse(b *Board) *Board {
	next := NewBoard(b.Rows, b.Cols)
	for c := 0; c < b.Cols; c++ {
		dst := b.Rows - 1
		for r := b.Rows - 1; r >= 0; r-- {
			t := b.Cells[r][c]
			if t == nil || t.Matched {
				continue
			}
			moved := t.Clone()
			moved.Matched = false
			moved.Animating = r != dst
			next.Cells[dst][c] = moved
			dst--
		}
	}
	return next
}
