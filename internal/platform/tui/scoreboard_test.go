package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store := newTestEnv(t, true).Store
	store.SaveScore(storage.ScoreEntry{Difficulty: "hard", Score: 8, Skin: "pipe-red"})

	m := NewScoreboardModel(store, config.DifficultyNormal, 100, 30)
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("normal has no rounds")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Preset() != config.DifficultyHard {
		t.Fatalf("preset = %v, expected hard", m.Preset())
	}
	view := m.View()
	if !strings.Contains(view, "Red") {
		t.Error("hard tab should list the red-pipe round")
	}
	if !strings.Contains(view, "Games: 1") {
		t.Error("sidebar should show stats")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if next.(ScoreboardModel).Preset() != config.DifficultyNormal {
		t.Error("shift+tab should go back")
	}
}

func TestScoreboardNarrowWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, config.DifficultyEasy, 60, 20)
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - EASY") {
		t.Error("title should name the difficulty")
	}
	if !strings.Contains(view, "No rounds recorded yet") {
		t.Error("empty message expected without storage")
	}
}

func TestScoreboardStandaloneBackQuits(t *testing.T) {
	m := NewScoreboardModel(nil, config.DifficultyNormal, 80, 24)
	m.standalone = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("standalone back should quit the program")
	}
}
