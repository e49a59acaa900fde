package match3

import (
	"github.com/vovakirdan/candy-arcade/internal/core"
	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

// Skin is how a game draws tokens. The rules are the same for every skin.
type Skin struct {
	ID     string
	Title  string
	Glyphs [m3.KindCount]rune
	Colors [m3.KindCount]core.Color

	// Specials are drawn with their own glyph in the token's color.
	Striped [2]rune // horizontal, vertical
	Wrapped rune
	Bomb    rune

	Matched rune
	Accent  core.Color
}

var (
	candySkin = Skin{
		ID:      "candy",
		Title:   "Candy Crush",
		Glyphs:  [m3.KindCount]rune{'●', '◆', '▲', '■', '♦', '♥'},
		Colors:  palette,
		Striped: [2]rune{'═', '║'},
		Wrapped: '▣',
		Bomb:    '✱',
		Matched: '✦',
		Accent:  core.ColorBrightMagenta,
	}

	bubbleSkin = Skin{
		ID:      "bubble",
		Title:   "Bubble Pop",
		Glyphs:  [m3.KindCount]rune{'o', 'o', 'o', 'o', 'o', 'o'},
		Colors:  palette,
		Striped: [2]rune{'=', '"'},
		Wrapped: '@',
		Bomb:    '*',
		Matched: '·',
		Accent:  core.ColorBrightCyan,
	}
)

var palette = [m3.KindCount]core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorPurple,
}

// Skins returns the registered skins in menu order.
func Skins() []Skin {
	return []Skin{candySkin, bubbleSkin}
}

// Glyph returns the rune and color for a token.
func (s Skin) Glyph(t *m3.Token) (rune, core.Color) {
	if t == nil {
		return ' ', core.ColorDefault
	}
	c := core.ColorGray
	if t.Kind.Valid() {
		c = s.Colors[t.Kind]
	}
	if t.Matched {
		return s.Matched, core.ColorBrightWhite
	}
	switch t.Special {
	case m3.SpecialStripedHorizontal:
		return s.Striped[0], c
	case m3.SpecialStripedVertical:
		return s.Striped[1], c
	case m3.SpecialWrapped:
		return s.Wrapped, c
	case m3.SpecialColorBomb:
		return s.Bomb, core.ColorBrightWhite
	}
	if !t.Kind.Valid() {
		return '?', c
	}
	return s.Glyphs[t.Kind], c
}
