package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"

	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectGameAndDifficulty(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "invaders_endless", Score: 450}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, want 2", len(m.items))
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("default difficulty = %s, want normal", m.Difficulty())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", m.Difficulty())
	}
	if !strings.Contains(m.View(), "450") {
		t.Error("menu does not show the endless high score")
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	res := m.result()
	if res.GameID != "invaders_endless" || res.Difficulty != config.DifficultyHard || res.Quit {
		t.Errorf("result = %+v", res)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("difficulty = %s, want fixed after wrapping left", m.Difficulty())
	}
}

func TestMenuQuitAndScoreboard(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, core.DefaultConfig()), runeKey("q"))
	if !m.result().Quit {
		t.Error("q should quit the menu")
	}

	m = menuUpdate(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 40
	m := NewSessionModel(cfg, Options{Store: testStore(t), Logger: log.New(io.Discard), Player: "eve"})

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.board != nil || isQuit(cmd) {
		t.Fatal("esc should return from the scoreboard to the menu")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("enter should start a game")
	}
	if m.game.game.ID() != "invaders" {
		t.Errorf("started %q, want invaders", m.game.game.ID())
	}

	m, _ = sessionUpdate(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Score:") {
		t.Error("game view missing HUD")
	}

	m, _ = sessionUpdate(t, m, runeKey("p"))
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, cmd = sessionUpdate(t, m, runeKey("b"))
	if m.game != nil || isQuit(cmd) {
		t.Fatal("back from a paused game should return to the menu")
	}

	m, cmd = sessionUpdate(t, m, runeKey("q"))
	if !isQuit(cmd) || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
