package config

import (
	_ "embed"
)

//go:embed defaults/rubiks.yaml
var defaultRubiksYAML []byte

// DefaultRubiksConfig returns the default cube configuration.
func DefaultRubiksConfig() RubiksConfig {
	return RubiksConfig{
		Gameplay: RubiksGameplay{
			ShuffleMoves:    50,
			HistoryCapacity: 100,
			CountUndo:       true,
			RecordNoOp:      true,
		},
		Colors: RubiksColors{
			Top:    "bright_white",
			Bottom: "bright_yellow",
			Left:   "green",
			Right:  "blue",
			Front:  "red",
			Back:   "orange",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rubiks", "rubiks_free":
		return defaultRubiksYAML
	default:
		return nil
	}
}
