// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Open the menu (same as flappy menu)
//	flappy play              - Start a game directly
//	flappy menu              - Menu with difficulty, pipe skin and scores
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores and achievements
//	flappy skins             - List or choose the pipe skin
//	flappy config            - Print or check the effective config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flappy/scores.db)
//	--config <path>      - Load a custom YAML config
//	--difficulty <name>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal take on the flap-through-the-gaps game.

Available commands:
  play     - Start a game directly
  menu     - Menu with difficulty, pipe skin and scores
  serve    - Start SSH server for remote play
  scores   - View high scores and achievements
  skins    - List or choose the pipe skin
  config   - Print or check the effective config

Examples:
  flappy
  flappy play --difficulty hard
  flappy serve --ssh :2222
  flappy scores --difficulty easy`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: last used)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file for interactive play")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}
