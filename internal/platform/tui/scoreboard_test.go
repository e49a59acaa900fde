package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-arcade/internal/registry"
)

func TestScoreboardToggleLevels(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("fake", 4321); err != nil {
		t.Fatal(err)
	}
	err := store.SaveLevelResult(registry.LevelResultData{
		GameID: "fake", Level: 2, LevelName: "Lemon Drops", Score: 900, MovesUsed: 12, Cleared: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == "fake" {
			m.gameCursor = i
		}
	}
	m.reload()

	if len(m.scores) != 1 || m.scores[0].Score != 4321 {
		t.Fatalf("scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("score view should be titled HIGH SCORES")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(ScoreboardModel)
	if m.view != viewLevels || len(m.levels) != 1 {
		t.Fatalf("view = %v, levels = %+v", m.view, m.levels)
	}
	out := m.View()
	for _, want := range []string{"LEVEL HISTORY", "Lemon Drops", "cleared"} {
		if !strings.Contains(out, want) {
			t.Errorf("level view missing %q:\n%s", want, out)
		}
	}
}
