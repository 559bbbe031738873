package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the config in use",
	Long: `Print the game config as YAML. Without --config the usual search
order applies: ~/.flappy/configs/flappy.yaml, ./configs/flappy.yaml, then
built-in defaults.

Save the output to ~/.flappy/configs/flappy.yaml to customize it.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --effective --difficulty hard
  flappy config check ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadFlappy(flagConfig)
		if err != nil {
			return err
		}

		if flagConfigEffective {
			preset, err := config.ParsePreset(flagDifficulty)
			if err != nil {
				return err
			}
			config.ApplyFlappyPreset(&cfg, preset)
		}

		out, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if _, err := config.LoadFlappy(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Apply the --difficulty preset before printing")
	configCmd.AddCommand(configCheckCmd)
}
