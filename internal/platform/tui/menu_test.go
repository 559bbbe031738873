package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuPlay(t *testing.T) {
	m := NewMenuModel(newTestEnv(t, false), testRT)
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.WantsPlay() {
		t.Error("enter on Play should request a game")
	}
}

func TestMenuCyclesAndPersistsChoices(t *testing.T) {
	env := newTestEnv(t, true)
	m := NewMenuModel(env, testRT)

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if env.Preset != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected hard", env.Preset)
	}

	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if env.Skin != flappy.SkinRed {
		t.Errorf("skin = %v, expected red", env.Skin)
	}

	if !strings.Contains(m.View(), "Red") {
		t.Error("menu should show the chosen skin")
	}

	v, ok, err := env.Store.Preference(storage.PrefSkin)
	if err != nil || !ok || v != "pipe-red" {
		t.Errorf("skin preference = %q, %v, %v", v, ok, err)
	}

	// A new session restores both choices
	fresh := &Env{Store: env.Store, Preset: config.DifficultyNormal}
	fresh.LoadPreferences()
	if fresh.Skin != flappy.SkinRed || fresh.Preset != config.DifficultyHard {
		t.Errorf("restored skin=%v preset=%v", fresh.Skin, fresh.Preset)
	}
}

func TestMenuPreferencesScoped(t *testing.T) {
	env := newTestEnv(t, true)
	env.Player = "alice"
	env.SetSkin(flappy.SkinRed)

	other := &Env{Store: env.Store, Player: "bob"}
	other.LoadPreferences()
	if other.Skin != flappy.SkinGreen {
		t.Error("one user's skin must not leak to another")
	}
}

func TestMenuWrapsAndQuits(t *testing.T) {
	m := NewMenuModel(newTestEnv(t, false), testRT)
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != itemQuit {
		t.Fatalf("cursor = %v, expected wrap to Quit", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(MenuModel).IsQuitting() || cmd == nil {
		t.Error("enter on Quit should quit")
	}
}

func TestMenuScoreboardShortcut(t *testing.T) {
	m := NewMenuModel(newTestEnv(t, false), testRT)
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuShowsBest(t *testing.T) {
	env := newTestEnv(t, true)
	env.Store.SaveScore(storage.ScoreEntry{Difficulty: "normal", Score: 17})

	m := NewMenuModel(env, testRT)
	if !strings.Contains(m.View(), "Best (normal): 17") {
		t.Error("menu should show the best score for the current difficulty")
	}
}
