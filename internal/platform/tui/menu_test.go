package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-arcade/internal/core"
	"github.com/vovakirdan/candy-arcade/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func TestMenuShowsBestResults(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("fake", 1234); err != nil {
		t.Fatal(err)
	}
	err := store.SaveLevelResult(registry.LevelResultData{GameID: "fake", Level: 3, Cleared: true})
	if err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	out := m.View()
	for _, want := range []string{"Fake", "1234", "level 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || cmd == nil {
		t.Fatal("enter should select the item under the cursor")
	}
	if !registry.Exists(sel.GameID) {
		t.Errorf("selected unknown game %q", sel.GameID)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, "player")

	send := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// move the cursor onto the fake game
	for i, item := range s.menu.items {
		if item.GameID == "fake" {
			s.menu.cursor = i
		}
	}
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("screen = %v, want game", s.screen)
	}
	fake := s.game.game.(*fakeGame)
	fake.state = core.GameState{GameOver: true}
	send(TickMsg{})
	if !strings.Contains(s.View(), "fake board") {
		t.Errorf("session should render the game:\n%s", s.View())
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", s.screen)
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("screen = %v, want scores", s.screen)
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Errorf("back from scores should return to the menu")
	}
}
