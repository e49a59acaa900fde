package core

import (
	"fmt"
	"strings"
)

// Pos addresses a board cell. Row 0 is the top row.
type Pos struct {
	Row, Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Adjacent reports whether o is a 4-neighbor of p.
func (p Pos) Adjacent(o Pos) bool {
	dr, dc := p.Row-o.Row, p.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a rows x cols grid of tokens indexed [row][col].
// A nil cell is empty.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]*Token
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	cells := make([][]*Token, rows)
	for r := range cells {
		cells[r] = make([]*Token, cols)
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// At returns the token at p, or nil if p is empty or out of bounds.
func (b *Board) At(p Pos) *Token {
	if !b.InBounds(p) {
		return nil
	}
	return b.Cells[p.Row][p.Col]
}

// Set places t at p. Out-of-bounds positions are ignored.
func (b *Board) Set(p Pos, t *Token) {
	if !b.InBounds(p) {
		return
	}
	b.Cells[p.Row][p.Col] = t
}

// Clone returns a deep copy of the board; tokens are copied too.
func (b *Board) Clone() *Board {
	c := NewBoard(b.Rows, b.Cols)
	for r := range b.Cells {
		for col, t := range b.Cells[r] {
			c.Cells[r][col] = t.Clone()
		}
	}
	return c
}

// Swap returns a new board with the tokens at a and c exchanged.
// Adjacency is not checked. The receiver is never mutated.
func (b *Board) Swap(a, c Pos) (*Board, error) {
	if !b.InBounds(a) || !b.InBounds(c) {
		return nil, fmt.Errorf("swap %s with %s: %w", a, c, ErrOutOfBounds)
	}
	if a == c {
		return nil, fmt.Errorf("swap %s: %w", a, ErrSameCell)
	}
	next := b.Clone()
	next.Cells[a.Row][a.Col], next.Cells[c.Row][c.Col] = next.Cells[c.Row][c.Col], next.Cells[a.Row][a.Col]
	return next, nil
}

// Equal reports whether both boards hold the same tokens (by ID and kind)
// in the same cells.
func (b *Board) Equal(o *Board) bool {
	return b.compare(o, func(x, y *Token) bool {
		return x.ID == y.ID && x.Kind == y.Kind
	})
}

// SameKinds reports whether both boards have the same kind layout,
// ignoring token identity.
func (b *Board) SameKinds(o *Board) bool {
	return b.compare(o, func(x, y *Token) bool {
		return x.Kind == y.Kind
	})
}

func (b *Board) compare(o *Board, same func(x, y *Token) bool) bool {
	if o == nil || b.Rows != o.Rows || b.Cols != o.Cols {
		return false
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			x, y := b.Cells[r][c], o.Cells[r][c]
			if (x == nil) != (y == nil) {
				return false
			}
			if x != nil && !same(x, y) {
				return false
			}
		}
	}
	return true
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := range b.Cells {
		for _, t := range b.Cells[r] {
			if t == nil {
				n++
			}
		}
	}
	return n
}

// ColumnTokens returns the non-empty tokens of a column, top to bottom.
func (b *Board) ColumnTokens(col int) []*Token {
	var out []*Token
	for r := 0; r < b.Rows; r++ {
		if t := b.Cells[r][col]; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Flag selects transient token flags for ClearFlags.
type Flag uint8

const (
	FlagMatched Flag = 1 << iota
	FlagSelected
	FlagNew
	FlagAnimating

	FlagAll = FlagMatched | FlagSelected | FlagNew | FlagAnimating
)

// ClearFlags resets the given flags on every token in place.
// It reports whether any token changed.
func (b *Board) ClearFlags(flags Flag) bool {
	changed := false
	for r := range b.Cells {
		for _, t := range b.Cells[r] {
			if t == nil {
				continue
			}
			if flags&FlagMatched != 0 && t.Matched {
				t.Matched, changed = false, true
			}
			if flags&FlagSelected != 0 && t.Selected {
				t.Selected, changed = false, true
			}
			if flags&FlagNew != 0 && t.New {
				t.New, changed = false, true
			}
			if flags&FlagAnimating != 0 && t.Animating {
				t.Animating, changed = false, true
			}
		}
	}
	return changed
}

// HasNew reports whether any token still carries the New flag.
func (b *Board) HasNew() bool {
	for r := range b.Cells {
		for _, t := range b.Cells[r] {
			if t != nil && t.New {
				return true
			}
		}
	}
	return false
}

// String renders the board with one letter per kind and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Cols + 1) * b.Rows)
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols; c++ {
			if t := b.Cells[r][c]; t != nil {
				sb.WriteRune(t.Kind.Char())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows of kind letters (R, O, Y, G, B, P).
// '.' marks an empty cell. All rows must have the same width.
func ParseBoard(lines ...string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse board: no rows")
	}
	cols := len([]rune(lines[0]))
	b := NewBoard(len(lines), cols)
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			if ch == '.' {
				continue
			}
			k, ok := kindFromChar(ch)
			if !ok {
				return nil, fmt.Errorf("parse board: unknown kind %q at %s", ch, P(r, c))
			}
			t := NewToken(k)
			t.New = false
			b.Cells[r][c] = t
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error.
func MustParseBoard(lines ...string) *Board {
	b, err := ParseBoard(lines...)
	if err != nil {
		panic(err)
	}
	return b
}
