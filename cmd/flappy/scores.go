package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/achievements"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresClear  bool
	flagScoresYes    bool
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and achievements",
	Long: `Display the top scores for a difficulty (default: normal, or the one
given with --difficulty), followed by the rounds played and achievements of
the local player, or of an SSH user with --player.

Examples:
  flappy scores
  flappy scores --difficulty hard --limit 20
  flappy scores --tui
  flappy scores --player alice
  flappy scores --clear --difficulty easy --yes`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete scores for the difficulty (all with --difficulty all)")
	scoresCmd.Flags().BoolVar(&flagScoresYes, "yes", false, "Confirm --clear")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "SSH user whose rounds and achievements to show (default: local player)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(store)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	if flagScoresTUI {
		rt := runtimeConfig()
		return tui.RunScoreboard(store, preset, rt.ScreenW, rt.ScreenH)
	}

	return printScores(os.Stdout, store, preset, flagScoresPlayer, flagScoresLimit)
}

func clearScores(store *storage.Store) error {
	if !flagScoresYes {
		return errors.New("refusing to clear scores without --yes")
	}

	target := flagDifficulty
	switch target {
	case "all":
		target = ""
	case "":
		return errors.New("--clear needs --difficulty (a preset or all)")
	default:
		if _, err := config.ParsePreset(target); err != nil {
			return err
		}
	}

	if err := store.ClearScores(target); err != nil {
		return err
	}
	fmt.Printf("Cleared scores for %s\n", flagDifficulty)
	return nil
}

func printScores(w io.Writer, store *storage.Store, preset config.DifficultyPreset, player string, limit int) error {
	scores, err := store.TopScores(string(preset), limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", preset)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'flappy play --difficulty %s' to set the first high score!\n", preset)
	} else {
		fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Pipes", "Date")
		fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")
		for i, e := range scores {
			skin := "-"
			if s, err := flappy.ParseSkin(e.Skin); err == nil {
				skin = s.Title()
			}
			fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %s\n", i+1, e.Score, skin, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	played, err := store.GamesPlayed(player)
	if err != nil {
		return err
	}
	unlocked, err := store.Achievements(player)
	if err != nil {
		return err
	}

	if player != "" {
		fmt.Fprintf(w, "\nPlayer: %s", player)
	}
	fmt.Fprintf(w, "\nRounds played: %d\n", played)
	fmt.Fprintln(w, "Achievements:")
	have := make(map[string]bool, len(unlocked))
	for _, u := range unlocked {
		have[u.ID] = true
	}
	for _, a := range achievements.All() {
		mark := "[ ]"
		if have[a.ID] {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, a.Title)
	}
	return nil
}
