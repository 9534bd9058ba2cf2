// rubiks is a Rubik's Cube you play in the terminal.
//
// Usage:
//
//	rubiks list              - List available modes
//	rubiks play [mode]       - Play a mode (default: rubiks)
//	rubiks menu              - Start menu to pick modes interactively
//	rubiks serve             - Start SSH server for remote play
//	rubiks scores [mode]     - Show best solves for a mode
//	rubiks scramble          - Print a random scramble and the resulting cube
//	rubiks config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible scrambles
//	--db <path>          - Set database path (default: ~/.rubiks/solves.db)
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Scramble depth preset: easy, normal, hard, fixed
//	--verbose            - Debug logging
//	--log-file <path>    - Log file for interactive commands
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rubiks/internal/games/rubiks"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rubiks",
	Short: "Rubik's Cube in your terminal",
	Long: `A Rubik's Cube you turn face by face in the terminal.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View best solves
  scramble  - Print a random scramble
  config    - Print the effective configuration

Examples:
  rubiks play
  rubiks play rubiks_free
  rubiks menu
  rubiks serve --ssh :2222
  rubiks scores rubiks
  rubiks scramble --moves 25 --seed 7`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		rubiks.SetConfigPath(flagConfig)
		rubiks.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rubiks/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Scramble preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs of interactive commands to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger returns a logger that stays off the terminal while the
// alternate screen is active. Without --log-file, --verbose logs go to
// ~/.rubiks/rubiks.log and everything else is dropped.
// The returned close function must be called on exit.
func tuiLogger() (*log.Logger, func()) {
	path := flagLogFile
	if path == "" && flagVerbose {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".rubiks", "rubiks.log")
		}
	}
	if path == "" {
		return newLogger(io.Discard, "rubiks"), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return newLogger(io.Discard, "rubiks"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "rubiks"), func() {}
	}
	return newLogger(f, "rubiks"), func() { f.Close() }
}
