// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for the cube game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// RubiksConfig contains all configuration for the cube game.
type RubiksConfig struct {
	Gameplay RubiksGameplay `yaml:"gameplay"`
	Colors   RubiksColors   `yaml:"colors"`
}

// RubiksGameplay defines session rules.
// Every field can be overridden from the environment.
type RubiksGameplay struct {
	ShuffleMoves    int  `yaml:"shuffle_moves"    env:"RUBIKS_SHUFFLE_MOVES"`
	HistoryCapacity int  `yaml:"history_capacity" env:"RUBIKS_HISTORY_CAPACITY"`
	CountUndo       bool `yaml:"count_undo"       env:"RUBIKS_COUNT_UNDO"`
	RecordNoOp      bool `yaml:"record_noop"      env:"RUBIKS_RECORD_NOOP"`
}

// RubiksColors names the sticker color of each face.
type RubiksColors struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Front  string `yaml:"front"`
	Back   string `yaml:"back"`
}

// byFace returns the color names in cube face order.
func (c RubiksColors) byFace() [cube.FaceCount]string {
	return [cube.FaceCount]string{
		cube.Top:    c.Top,
		cube.Bottom: c.Bottom,
		cube.Left:   c.Left,
		cube.Right:  c.Right,
		cube.Front:  c.Front,
		cube.Back:   c.Back,
	}
}

// Palette resolves the color names to screen colors, indexed by facelet color.
func (c RubiksColors) Palette() ([cube.FaceCount]core.Color, error) {
	var out [cube.FaceCount]core.Color
	for f, name := range c.byFace() {
		col, ok := core.ParseColor(name)
		if !ok {
			return out, fmt.Errorf("%w: unknown color %q for %s face", ErrInvalidConfig, name, cube.Face(f))
		}
		out[f] = col
	}
	return out, nil
}

// Validate checks that the config can drive a game.
func (c RubiksConfig) Validate() error {
	if c.Gameplay.ShuffleMoves < 0 {
		return fmt.Errorf("%w: shuffle_moves must be >= 0, got %d", ErrInvalidConfig, c.Gameplay.ShuffleMoves)
	}
	if c.Gameplay.HistoryCapacity < 1 {
		return fmt.Errorf("%w: history_capacity must be >= 1, got %d", ErrInvalidConfig, c.Gameplay.HistoryCapacity)
	}
	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	return nil
}
