package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{Difficulty: "hard", Score: 12, Skin: "pipe-red"})
	store.SaveScore(storage.ScoreEntry{Difficulty: "hard", Score: 30, Skin: "pipe-green"})
	store.UnlockAchievement("", "first-time")

	var buf bytes.Buffer
	if err := printScores(&buf, store, config.DifficultyHard, "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		if strings.Contains(l, "----") {
			if f := strings.Fields(lines[i+1]); len(f) < 2 || f[1] != "30" {
				t.Errorf("best score should come first, got %q", lines[i+1])
			}
			break
		}
	}
	for _, want := range []string{"High Scores - hard", "Red", "Rounds played: 2", "[x] Played 1 time", "[ ] Played 5 times"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printScores(&buf, openStore(t), config.DifficultyEasy, "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Error("empty message expected")
	}
}

func TestPrintScoresForPlayer(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{Player: "alice", Difficulty: "normal", Score: 3})
	store.SaveScore(storage.ScoreEntry{Difficulty: "normal", Score: 1})
	store.UnlockAchievement("alice", "first-time")

	var buf bytes.Buffer
	if err := printScores(&buf, store, config.DifficultyNormal, "alice", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Player: alice", "Rounds played: 1", "[x] Played 1 time"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printScores(&buf, store, config.DifficultyNormal, "", 10)
	if !strings.Contains(buf.String(), "[ ] Played 1 time") {
		t.Errorf("alice's achievement must not show for the local player:\n%s", buf.String())
	}
}

func TestChosenSkin(t *testing.T) {
	store := openStore(t)

	skin, err := chosenSkin(store)
	if err != nil || skin != flappy.SkinGreen {
		t.Errorf("default skin = %v, %v", skin, err)
	}

	store.SetPreference(storage.PrefSkin, "pipe-red")
	if skin, _ := chosenSkin(store); skin != flappy.SkinRed {
		t.Errorf("saved skin = %v, expected red", skin)
	}

	store.SetPreference(storage.PrefSkin, "pipe-gold")
	if skin, _ := chosenSkin(store); skin != flappy.SkinGreen {
		t.Error("unknown saved skin should fall back to green")
	}

	var buf bytes.Buffer
	printSkins(&buf, flappy.SkinRed)
	if !strings.Contains(buf.String(), "* pipe-red") {
		t.Errorf("current skin should be marked:\n%s", buf.String())
	}
}
