// Package core implements the match-3 rule engine: board model, match
// detection, gravity, refill, the resolution cascade and the level session.
// It has no dependency on any presentation package.
package core

import (
	"strings"

	"github.com/google/uuid"
)

// Kind is the base color of a token.
type Kind uint8

// Token kinds. KindCount is the number of base kinds.
const (
	KindRed Kind = iota
	KindOrange
	KindYellow
	KindGreen
	KindBlue
	KindPurple
	KindCount
)

var kindNames = [...]string{"red", "orange", "yellow", "green", "blue", "purple"}

// kindChars are the letters used by Board.String and ParseBoard.
var kindChars = [...]rune{'R', 'O', 'Y', 'G', 'B', 'P'}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Char returns the single-letter representation of the kind.
func (k Kind) Char() rune {
	if int(k) < len(kindChars) {
		return kindChars[k]
	}
	return '?'
}

// Valid reports whether k is one of the base kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// ParseKind parses a kind name (case-insensitive) or its single letter.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name || (len(s) == 1 && rune(s[0]) == kindChars[i]+('a'-'A')) {
			return Kind(i), true
		}
	}
	return 0, false
}

// kindFromChar maps a board letter back to a kind.
func kindFromChar(r rune) (Kind, bool) {
	for i, c := range kindChars {
		if r == c {
			return Kind(i), true
		}
	}
	return 0, false
}

// AllKinds returns every base kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Special tags a token created from a long run.
// Specials carry no activation behavior.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialStripedHorizontal
	SpecialStripedVertical
	SpecialWrapped
	SpecialColorBomb
)

// String returns the name of the special tag.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialStripedHorizontal:
		return "striped-horizontal"
	case SpecialStripedVertical:
		return "striped-vertical"
	case SpecialWrapped:
		return "wrapped"
	case SpecialColorBomb:
		return "color-bomb"
	default:
		return "unknown"
	}
}

// Token is a single colored unit occupying one board cell.
// ID and Kind are its identity; the flags are presentation hints.
type Token struct {
	ID      string
	Kind    Kind
	Special Special

	Matched   bool // marked by the detector in the current step
	Selected  bool // pending swap
	New       bool // created by the last refill or board creation
	Animating bool // moved by the last collapse
}

// NewToken creates a token of the given kind with a fresh ID.
// New tokens carry the New flag.
func NewToken(kind Kind) *Token {
	return &Token{
		ID:   uuid.NewString(),
		Kind: kind,
		New:  true,
	}
}

// Clone returns a copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
