package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rubiks/internal/config"
	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

var (
	flagScrambleMoves  int
	flagScrambleVerify bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Generate a random scramble, print it in cube notation and show the
resulting cube as an unfolded net.

The scramble depth defaults to the configured shuffle_moves (or the
--difficulty preset). Pass --seed to reproduce a scramble.

Examples:
  rubiks scramble
  rubiks scramble --moves 25
  rubiks scramble --seed 42 --difficulty easy
  rubiks scramble --verify`,
	Run: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&flagScrambleMoves, "moves", "n", 0, "Number of scramble moves (0 = from config)")
	scrambleCmd.Flags().BoolVar(&flagScrambleVerify, "verify", false, "Replay the scramble and its inverse before printing")
}

func runScramble(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "rubiks")

	n := flagScrambleMoves
	if n <= 0 {
		cfg, err := config.LoadRubiks(flagConfig)
		if err != nil {
			logger.Warn("using default config", "error", err)
			cfg = config.DefaultRubiksConfig()
		}
		if p, ok := config.ParseDifficultyPreset(flagDifficulty); ok {
			config.ApplyRubiksPreset(&cfg, p)
		}
		n = cfg.Gameplay.ShuffleMoves
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("scrambling", "moves", n, "seed", seed)

	c := cube.New()
	moves := c.Randomize(rand.New(rand.NewSource(seed)), n)

	if err := checkScramble(c, moves, flagScrambleVerify); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scramble (%d moves): %s\n", len(moves), cube.FormatMoves(moves))
	fmt.Println()
	fmt.Println(c.String())
}

var errScrambleMismatch = errors.New("scramble replay does not match the cube")

// checkScramble makes sure c still holds nine facelets of every color.
// With replay set it also rebuilds c from moves and undoes it back to solved.
func checkScramble(c *cube.Cube, moves []cube.Move, replay bool) error {
	for color, n := range c.ColorCounts() {
		if n != 9 {
			return fmt.Errorf("color %v appears %d times", cube.Face(color), n)
		}
	}
	if !replay {
		return nil
	}

	rebuilt := cube.New()
	if err := rebuilt.Apply(moves...); err != nil {
		return fmt.Errorf("replay scramble: %w", err)
	}
	if rebuilt.Snapshot() != c.Snapshot() {
		return errScrambleMismatch
	}

	undo := make([]cube.Move, len(moves))
	for i, m := range moves {
		undo[len(moves)-1-i] = m.Inverse()
	}
	back := c.Clone()
	if err := back.Apply(undo...); err != nil {
		return fmt.Errorf("undo scramble: %w", err)
	}
	if !back.IsSolved() {
		return errors.New("inverse scramble does not solve the cube")
	}
	return nil
}
