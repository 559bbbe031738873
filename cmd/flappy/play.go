package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game without the menu.

Controls:
  Enter/R       - Start a round (or play again after game over)
  Space/Up/W    - Flap
  Ctrl+S        - Save a text screenshot to ~/.flappy/screenshots
  B/Esc         - Exit (between rounds)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Gaps arrive faster and pipes speed up at half the normal rate
  normal - Default ramp
  hard   - Faster start, ramp twice as steep
  fixed  - No ramp, spacing and speed stay at their initial values

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return interactive(tui.RunGame)
	},
}
