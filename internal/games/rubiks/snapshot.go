package rubiks

import (
	"time"

	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateSolved      GameStateType = "solved"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string // "shuffled" or "free"
	Selected   cube.Face
	Moves      int
	HistoryLen int
	Elapsed    time.Duration
	Scramble   []cube.Move
	Cube       cube.State
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.solved:
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Selected:   g.SelectedFace(),
		Moves:      g.session.MoveCount(),
		HistoryLen: g.session.HistoryLen(),
		Elapsed:    g.session.Elapsed(),
		Scramble:   append([]cube.Move(nil), g.scramble...),
		Cube:       g.session.Snapshot(),
		State:      state,
	}
}
