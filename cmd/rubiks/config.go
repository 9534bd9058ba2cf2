package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rubiks/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

Search order: --config, ~/.rubiks/configs/rubiks.yaml,
./configs/rubiks.yaml, built-in defaults. RUBIKS_* environment variables
override the file, and --difficulty overrides the scramble depth.

Examples:
  rubiks config
  rubiks config --defaults > ~/.rubiks/configs/rubiks.yaml
  RUBIKS_SHUFFLE_MOVES=5 rubiks config`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.GetDefaultYAML("rubiks"))
		return
	}

	cfg, err := config.LoadRubiks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if p, ok := config.ParseDifficultyPreset(flagDifficulty); ok {
		config.ApplyRubiksPreset(&cfg, p)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
