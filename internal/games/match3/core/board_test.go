package core

import (
	"errors"
	"testing"
)

func TestParseBoardRoundTrip(t *testing.T) {
	lines := []string{
		"RGB",
		"O.P",
		"YYR",
	}
	b := MustParseBoard(lines...)

	if b.Rows != 3 || b.Cols != 3 {
		t.Fatalf("size = %dx%d, want 3x3", b.Rows, b.Cols)
	}
	want := "RGB\nO.P\nYYR"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if b.At(P(1, 1)) != nil {
		t.Error("At(1,1) should be empty")
	}
	if b.EmptyCount() != 1 {
		t.Errorf("EmptyCount() = %d, want 1", b.EmptyCount())
	}
	if b.IsFull() {
		t.Error("IsFull() = true, want false")
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"ragged rows", []string{"RGB", "RG"}},
		{"unknown letter", []string{"RXB"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBoard(tt.lines...); err == nil {
				t.Error("ParseBoard() should fail")
			}
		})
	}
}

func TestPosAdjacent(t *testing.T) {
	tests := []struct {
		a, b Pos
		want bool
	}{
		{P(1, 1), P(0, 1), true},
		{P(1, 1), P(2, 1), true},
		{P(1, 1), P(1, 0), true},
		{P(1, 1), P(1, 2), true},
		{P(1, 1), P(0, 0), false},
		{P(1, 1), P(1, 1), false},
		{P(1, 1), P(1, 3), false},
	}
	for _, tt := range tests {
		if got := tt.a.Adjacent(tt.b); got != tt.want {
			t.Errorf("%s.Adjacent(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSwapReversible(t *testing.T) {
	b := MustParseBoard(
		"RGBY",
		"OPRG",
		"BYOP",
	)

	pairs := [][2]Pos{
		{P(0, 0), P(0, 1)},
		{P(1, 2), P(2, 2)},
		{P(0, 0), P(2, 3)}, // adjacency is not checked
	}
	for _, pair := range pairs {
		once, err := b.Swap(pair[0], pair[1])
		if err != nil {
			t.Fatalf("Swap(%s, %s) error: %v", pair[0], pair[1], err)
		}
		if once.Equal(b) {
			t.Errorf("Swap(%s, %s) did not change the board", pair[0], pair[1])
		}
		twice, err := once.Swap(pair[0], pair[1])
		if err != nil {
			t.Fatalf("second Swap error: %v", err)
		}
		if !twice.Equal(b) {
			t.Errorf("swapping %s and %s twice:\n%s\nwant\n%s", pair[0], pair[1], twice, b)
		}
	}
}

func TestSwapDoesNotMutate(t *testing.T) {
	b := MustParseBoard("RG")
	before := b.Clone()

	if _, err := b.Swap(P(0, 0), P(0, 1)); err != nil {
		t.Fatalf("Swap() error: %v", err)
	}
	if !b.Equal(before) {
		t.Error("Swap() mutated the receiver")
	}
}

func TestSwapRejectsInvalid(t *testing.T) {
	b := MustParseBoard("RG", "BY")

	tests := []struct {
		name string
		a, c Pos
		want error
	}{
		{"same cell", P(0, 0), P(0, 0), ErrSameCell},
		{"row out of bounds", P(0, 0), P(2, 0), ErrOutOfBounds},
		{"negative col", P(0, -1), P(0, 0), ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Swap(tt.a, tt.c)
			if !errors.Is(err, tt.want) {
				t.Errorf("Swap() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Error("Swap() should return nil board on error")
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := MustParseBoard("RG")
	c := b.Clone()
	c.At(P(0, 0)).Selected = true
	c.Set(P(0, 1), nil)

	if b.At(P(0, 0)).Selected {
		t.Error("clone shares tokens with original")
	}
	if b.At(P(0, 1)) == nil {
		t.Error("clone shares cells with original")
	}
	if !b.SameKinds(MustParseBoard("RG")) {
		t.Error("SameKinds() = false for identical layouts")
	}
}

func TestClearFlags(t *testing.T) {
	b := MustParseBoard("RG")
	tok := b.At(P(0, 0))
	tok.Matched, tok.Selected, tok.New, tok.Animating = true, true, true, true

	if !b.ClearFlags(FlagNew) {
		t.Error("ClearFlags(FlagNew) reported no change")
	}
	if tok.New {
		t.Error("New flag not cleared")
	}
	if !tok.Matched || !tok.Selected || !tok.Animating {
		t.Error("ClearFlags(FlagNew) cleared other flags")
	}

	b.ClearFlags(FlagAll)
	if tok.Matched || tok.Selected || tok.Animating {
		t.Error("ClearFlags(FlagAll) left flags set")
	}
	if b.ClearFlags(FlagAll) {
		t.Error("ClearFlags on a clean board reported a change")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"red", KindRed, true},
		{"Purple", KindPurple, true},
		{" green ", KindGreen, true},
		{"y", KindYellow, true},
		{"B", KindBlue, true},
		{"pink", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewTokenUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		tok := NewToken(KindRed)
		if seen[tok.ID] {
			t.Fatalf("duplicate token id %s", tok.ID)
		}
		seen[tok.ID] = true
		if !tok.New {
			t.Error("NewToken() should set New")
		}
	}
}
