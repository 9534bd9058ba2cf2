package config

// DifficultyPreset represents a named scramble depth.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown values return false.
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// ShuffleMovesForPreset returns the scramble depth for a preset,
// or -1 when the preset keeps the configured value.
func ShuffleMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 10
	case DifficultyNormal:
		return 25
	case DifficultyHard:
		return 50
	default:
		return -1
	}
}

// ApplyRubiksPreset modifies the config based on a difficulty preset.
func ApplyRubiksPreset(cfg *RubiksConfig, preset DifficultyPreset) {
	if n := ShuffleMovesForPreset(preset); n >= 0 {
		cfg.Gameplay.ShuffleMoves = n
	}
}
