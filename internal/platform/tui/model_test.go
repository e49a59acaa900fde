package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-arcade/internal/core"
	"github.com/vovakirdan/candy-arcade/internal/registry"
	"github.com/vovakirdan/candy-arcade/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	state   core.GameState
	resized [2]int
	saver   registry.LevelResultSaver
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake board") }

func (g *fakeGame) SetLevelResultSaver(s registry.LevelResultSaver) { g.saver = s }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame in place after each step.
	f := core.NewInputFrame()
	for a := range in.Actions {
		f.Set(a)
	}
	g.frames = append(g.frames, f)
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsInput(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init reset the game %d times, want 1", g.resets)
	}

	m = update(t, m, runeKey("h"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionHint) {
		t.Error("first frame should carry the hint")
	}
	if !g.frames[1].Empty() {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset a resizable game")
	}
	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig())
	if g.saver == nil {
		t.Fatal("model should hand the store to the game")
	}

	g.state = core.GameState{Score: 500, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	// the game restarts itself and ends again
	g.state = core.GameState{}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 700, GameOver: true}
	update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 || scores[0].Score != 700 || scores[1].Score != 500 {
		t.Errorf("saved scores = %+v, want 700 and 500", scores)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	g := &fakeGame{}

	standalone := NewModel(g, nil, testConfig())
	g.state = core.GameState{GameOver: true}
	standalone = update(t, standalone, TickMsg{})
	standalone = update(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if standalone.BackToMenu() {
		t.Error("standalone model has no menu to return to")
	}

	embedded := newEmbeddedModel(g, nil, testConfig())
	embedded = update(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if embedded.BackToMenu() {
		t.Error("back before the first tick should not leave a running game")
	}
	embedded = update(t, embedded, TickMsg{})
	embedded = update(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.BackToMenu() {
		t.Error("back after game over should return to the menu")
	}

	next, cmd := standalone.Update(runeKey("q"))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig())
	out := m.View()
	if !strings.Contains(out, "fake board") {
		t.Errorf("View() = %q", out)
	}
	if got := strings.Count(out, "\n"); got != 9 {
		t.Errorf("View() has %d line breaks, want 9", got)
	}
}
