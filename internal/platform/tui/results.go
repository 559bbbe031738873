package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/achievements"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// roundRecordedMsg reports the outcome of persisting a finished round.
type roundRecordedMsg struct {
	round    int
	score    int
	best     int
	newBest  bool
	unlocked []achievements.Achievement
	err      error
}

// recordRoundCmd saves the round off the UI loop.
func recordRoundCmd(store *storage.Store, entry storage.ScoreEntry, round int) tea.Cmd {
	return func() tea.Msg {
		msg := recordRound(store, entry)
		msg.round = round
		return msg
	}
}

// recordRound saves the score, then works out the best score and any
// achievements the player's new play count unlocks. Every round is saved,
// including zero scores, since achievements count plays.
func recordRound(store *storage.Store, entry storage.ScoreEntry) roundRecordedMsg {
	msg := roundRecordedMsg{score: entry.Score}
	if store == nil {
		return msg
	}

	rec, err := store.RecordRound(entry)
	if err != nil {
		msg.err = err
		return msg
	}
	msg.best = max(rec.PrevBest, entry.Score)
	msg.newBest = entry.Score > rec.PrevBest

	msg.unlocked, msg.err = achievements.Record(store, entry.Player, rec.Plays)
	return msg
}

// notes returns the extra lines for the game over panel.
func (r roundRecordedMsg) notes() []string {
	var lines []string
	switch {
	case r.newBest:
		lines = append(lines, "New best!")
	case r.best > 0:
		lines = append(lines, fmt.Sprintf("Best: %d", r.best))
	}
	for _, a := range r.unlocked {
		lines = append(lines, "Unlocked: "+a.Title)
	}
	return lines
}
