package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/platform/tui"
	"github.com/vovakirdan/tui-rubiks/internal/registry"
	"github.com/vovakirdan/tui-rubiks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: rubiks).

Controls:
  Up/Down, W/S, K/J     - Select face
  Right, D, L           - Turn selected face clockwise
  Left, A, H            - Turn selected face counter-clockwise
  U/Z/Backspace         - Undo last move
  P/Space               - Pause
  R                     - New cube
  Esc/B                 - Leave (when solved or paused)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - 10 scramble moves
  normal - 25 scramble moves
  hard   - 50 scramble moves
  fixed  - Scramble depth from the config file

Examples:
  rubiks play
  rubiks play rubiks_free
  rubiks play --difficulty easy
  rubiks play --seed 42
  rubiks play --config ./my-rubiks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "rubiks"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rubiks list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
