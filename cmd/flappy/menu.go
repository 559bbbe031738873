package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the game menu",
	Long: `Open the menu to start games, change difficulty or pipe skin, and
browse high scores. Choices are remembered between runs.

Controls:
  Up/Down       - Navigate
  Left/Right    - Change difficulty or skin
  Enter         - Select
  Tab           - High scores
  Q/Ctrl+C      - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return interactive(tui.RunSession)
}
