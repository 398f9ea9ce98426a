package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arcade/internal/config"
	"github.com/vovakirdan/tank-arcade/internal/core"
)

func sessionConfig(t *testing.T) core.RuntimeConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.ConfigPath = path
	return cfg
}

func send(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if len(m.items) != 2 {
		t.Fatalf("items = %+v, expected two modes", m.items)
	}
	if m.items[0].GameID != "battle" || m.items[1].Players != 2 {
		t.Errorf("items = %+v", m.items)
	}
	if m.View() == "" {
		t.Error("View() should not be empty")
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(sessionConfig(t), GameOptions{})

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.game.ID() != "battle_2p" {
		t.Errorf("game = %q, expected battle_2p", m.game.game.ID())
	}

	m = send(m, runeKey('p'))
	m = send(m, TickMsg{Chain: m.game.chain})
	m = send(m, runeKey('b'))
	if m.screen != screenMenu || m.game != nil {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}
