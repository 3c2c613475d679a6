package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/superngon/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML. Save it to
~/.superngon/configs/ngon.yaml or ./configs/ngon.yaml and edit it to
change the game.

With --effective the configuration that would be used right now is printed
instead, after the search order, --config and --difficulty are applied.

Examples:
  superngon config > ~/.superngon/configs/ngon.yaml
  superngon config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration in effect")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("%v", err)
	}
	enc.Close()
}
