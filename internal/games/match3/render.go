package match3

import (
	"fmt"

	"github.com/vovakirdan/candy-arcade/internal/core"
	m3 "github.com/vovakirdan/candy-arcade/internal/games/match3/core"
)

const (
	cellWidth = 2 // glyph plus one spacer column
	hudHeight = 3
	hudWidth  = 36
)

// layoutSize is the smallest screen that fits the level: HUD, framed board and footer.
func layoutSize(lvl m3.LevelConfig) (w, h int) {
	return max(lvl.Cols*cellWidth+3, hudWidth), hudHeight + lvl.Rows + 2 + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		dst.DrawTextCentered(dst.Height()/2, "Configuration error, see log", core.ColorRed)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	boardW := snap.Board.Cols*cellWidth + 3
	boardH := snap.Board.Rows + 2
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight
	board := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderHUD(dst, snap, board)
	g.renderBoard(dst, snap, board)
	g.renderFooter(dst, board)
	g.renderOverlays(dst, snap, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.session.CurrentLevel())
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, snap m3.Snapshot, board core.Rect) {
	dst.DrawTextCentered(0, g.skin.Title, g.skin.Accent)

	w := max(board.W, hudWidth)
	hud := core.NewRect((dst.Width()-w)/2, 1, w, 2)

	level := fmt.Sprintf("Level %d/%d %s", snap.Level.ID, len(g.session.Levels()), snap.Level.Name)
	dst.DrawText(hud.X, 1, level)
	moves := fmt.Sprintf("Moves %d", snap.MovesLeft)
	movesColor := core.ColorDefault
	if snap.MovesLeft <= 3 {
		movesColor = core.ColorBrightRed
	}
	dst.DrawTextColored(hud.Right()-len(moves), 1, moves, movesColor)

	score := fmt.Sprintf("Score %d/%d", snap.Score, snap.Level.TargetScore)
	scoreColor := core.ColorDefault
	if snap.Score >= snap.Level.TargetScore {
		scoreColor = core.ColorBrightGreen
	}
	dst.DrawTextColored(hud.X, 2, score, scoreColor)
	total := fmt.Sprintf("Total %d", snap.TotalScore)
	dst.DrawText(hud.Right()-len(total), 2, total)
}

func (g *Game) renderBoard(dst *core.Screen, snap m3.Snapshot, board core.Rect) {
	frame := core.ColorGray
	if snap.Locked {
		frame = g.skin.Accent
	}
	dst.DrawBox(board, frame)

	b := snap.Board
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			x, y := cellX(board, c), board.Y+1+r
			ch, color := g.skin.Glyph(b.At(m3.P(r, c)))
			dst.SetColored(x, y, ch, color)
		}
	}

	if g.hint != nil {
		g.bracket(dst, board, g.hint.From, '{', '}', core.ColorBrightYellow)
		g.bracket(dst, board, g.hint.To, '{', '}', core.ColorBrightYellow)
	}
	if snap.Selected != nil {
		g.bracket(dst, board, *snap.Selected, '(', ')', g.skin.Accent)
	}
	if snap.Phase == m3.PhasePlaying {
		g.bracket(dst, board, g.cursor, '[', ']', core.ColorBrightWhite)
	}
}

// bracket marks a cell with runes in the spacer columns either side of it.
func (g *Game) bracket(dst *core.Screen, board core.Rect, p m3.Pos, left, right rune, color core.Color) {
	x, y := cellX(board, p.Col), board.Y+1+p.Row
	dst.SetColored(x-1, y, left, color)
	dst.SetColored(x+1, y, right, color)
}

func cellX(board core.Rect, col int) int {
	return board.X + 2 + col*cellWidth
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	if g.message != "" {
		dst.DrawTextCentered(y, g.message, g.skin.Accent)
	}
	if g.bell != nil && g.bell.Muted() {
		dst.DrawText(board.X, y, "muted")
	}
	dst.DrawTextCentered(dst.Height()-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen, snap m3.Snapshot, board core.Rect) {
	switch {
	case snap.Phase == m3.PhaseEnded && snap.Won:
		drawOverlay(dst, board, g.skin.Accent, "ALL LEVELS CLEARED!",
			fmt.Sprintf("Total score: %d", snap.TotalScore), "Press R to play again")
	case snap.Phase == m3.PhaseEnded:
		drawOverlay(dst, board, core.ColorBrightRed, "OUT OF MOVES",
			fmt.Sprintf("%d of %d points", snap.Score, snap.Level.TargetScore),
			fmt.Sprintf("Total score: %d", snap.TotalScore), "Press R to restart")
	case g.paused:
		drawOverlay(dst, board, core.ColorDefault, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, line := range lines {
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, color)
	}
}
