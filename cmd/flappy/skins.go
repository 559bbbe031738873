package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List pipe skins",
	Long: `List the available pipe skins and mark the chosen one.

Examples:
  flappy skins
  flappy skins use pipe-red`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		current, err := chosenSkin(store)
		if err != nil {
			return err
		}
		printSkins(os.Stdout, current)
		return nil
	},
}

var skinsUseCmd = &cobra.Command{
	Use:   "use <skin>",
	Short: "Choose the pipe skin",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		skin, err := flappy.ParseSkin(args[0])
		if err != nil {
			return err
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetPreference(storage.PrefSkin, skin.String()); err != nil {
			return err
		}
		fmt.Printf("Pipes set to %s\n", skin.Title())
		return nil
	},
}

func init() {
	skinsCmd.AddCommand(skinsUseCmd)
}

// chosenSkin reads the saved skin, defaulting to green.
func chosenSkin(store *storage.Store) (flappy.Skin, error) {
	v, ok, err := store.Preference(storage.PrefSkin)
	if err != nil || !ok {
		return flappy.SkinGreen, err
	}
	skin, err := flappy.ParseSkin(v)
	if err != nil {
		return flappy.SkinGreen, nil
	}
	return skin, nil
}

func printSkins(w io.Writer, current flappy.Skin) {
	for _, s := range flappy.Skins() {
		mark := " "
		if s == current {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", mark, s, s.Title())
	}
}
