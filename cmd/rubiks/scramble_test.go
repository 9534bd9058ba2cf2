package main

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

func TestCheckScrambleAcceptsScrambledCube(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		c := cube.New()
		moves := c.Randomize(rand.New(rand.NewSource(seed)), 5)

		if c.IsValid() {
			t.Fatalf("seed %d: scramble %s left the cube solved", seed, cube.FormatMoves(moves))
		}
		if err := checkScramble(c, moves, false); err != nil {
			t.Errorf("checkScramble(seed %d) = %v, expected nil", seed, err)
		}
		if err := checkScramble(c, moves, true); err != nil {
			t.Errorf("checkScramble(seed %d, replay) = %v, expected nil", seed, err)
		}
	}
}

func TestCheckScrambleEmpty(t *testing.T) {
	if err := checkScramble(cube.New(), nil, true); err != nil {
		t.Errorf("checkScramble(solved, no moves) = %v, expected nil", err)
	}
}

func TestCheckScrambleDetectsMismatch(t *testing.T) {
	c := cube.New()
	moves := c.Randomize(rand.New(rand.NewSource(3)), 6)

	// Claim one move fewer than was applied.
	err := checkScramble(c, moves[:len(moves)-1], true)
	if !errors.Is(err, errScrambleMismatch) {
		t.Errorf("checkScramble() = %v, expected %v", err, errScrambleMismatch)
	}
}
