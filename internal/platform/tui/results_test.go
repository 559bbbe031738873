package tui

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/achievements"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestRecordRoundWithoutStore(t *testing.T) {
	msg := recordRound(nil, storage.ScoreEntry{Difficulty: "normal", Score: 4})
	if msg.err != nil || msg.score != 4 {
		t.Errorf("unexpected result %+v", msg)
	}
	if len(msg.notes()) != 0 {
		t.Errorf("no notes expected without storage, got %v", msg.notes())
	}
}

func TestRecordRoundBestAndAchievements(t *testing.T) {
	store := newTestEnv(t, true).Store
	entry := func(score int) storage.ScoreEntry {
		return storage.ScoreEntry{Difficulty: "normal", Score: score, Skin: "pipe-green"}
	}

	first := recordRound(store, entry(3))
	if first.err != nil {
		t.Fatalf("recordRound() failed: %v", first.err)
	}
	if !first.newBest || first.best != 3 {
		t.Errorf("first round should be a new best of 3, got %+v", first)
	}

	for _, s := range []int{1, 2, 0} {
		if r := recordRound(store, entry(s)); r.newBest || len(r.unlocked) != 0 {
			t.Errorf("round with score %d: unexpected %+v", s, r)
		}
	}

	fifth := recordRound(store, entry(2))
	if fifth.best != 3 || fifth.newBest {
		t.Errorf("fifth round best = %d newBest = %v", fifth.best, fifth.newBest)
	}
	if len(fifth.unlocked) != 1 || fifth.unlocked[0].ID != "five-times" {
		t.Errorf("fifth round should unlock five-times, got %+v", fifth.unlocked)
	}
}

func TestRecordRoundPerPlayer(t *testing.T) {
	store := newTestEnv(t, true).Store

	alice := recordRound(store, storage.ScoreEntry{Player: "alice", Difficulty: "normal", Score: 6})
	if alice.err != nil || len(alice.unlocked) != 1 {
		t.Fatalf("alice's first round: %+v", alice)
	}

	bob := recordRound(store, storage.ScoreEntry{Player: "bob", Difficulty: "normal", Score: 2})
	if bob.err != nil {
		t.Fatalf("recordRound() failed: %v", bob.err)
	}
	if len(bob.unlocked) != 1 || bob.unlocked[0].ID != "first-time" {
		t.Errorf("bob's first round should unlock first-time, got %+v", bob.unlocked)
	}
	if bob.best != 6 || bob.newBest {
		t.Errorf("best score is shared across players, got best %d newBest %v", bob.best, bob.newBest)
	}
}

func TestRoundNotes(t *testing.T) {
	five, _ := achievements.Lookup("five-times")
	tests := []struct {
		name string
		msg  roundRecordedMsg
		want []string
	}{
		{"nothing", roundRecordedMsg{}, nil},
		{"new best", roundRecordedMsg{newBest: true, best: 9}, []string{"New best!"}},
		{"best", roundRecordedMsg{best: 9}, []string{"Best: 9"}},
		{
			"best and unlock",
			roundRecordedMsg{best: 2, unlocked: []achievements.Achievement{five}},
			[]string{"Best: 2", "Unlocked: Played 5 times"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.notes(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("notes() = %v, expected %v", got, tc.want)
			}
		})
	}
}
