package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-eater/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, as YAML.

Honors --config and --difficulty, so the output shows exactly what
'play' would run with. Save it to ~/.snake-eater/configs/snake.yaml
to customize the game.

With --defaults the built-in configuration file is printed as shipped,
comments included.

Examples:
  snake-eater config
  snake-eater config --defaults
  snake-eater config --difficulty hard > ~/.snake-eater/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addPlayFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in configuration file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
