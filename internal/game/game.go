// Package game wraps a cube into a playable session: a move counter, a
// bounded undo history and a solve timer.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

// Status is the observed state of a session.
// The session never refuses moves; Solved is only an observation.
type Status int

const (
	Playing Status = iota
	Solved
)

func (s Status) String() string {
	if s == Solved {
		return "solved"
	}
	return "playing"
}

// Option configures a Game.
type Option func(*Game)

// WithHistoryCapacity sets how many moves can be undone.
func WithHistoryCapacity(n int) Option {
	return func(g *Game) { g.capacity = n }
}

// WithUndoCounted controls whether Undo increments the move counter.
func WithUndoCounted(counted bool) Option {
	return func(g *Game) { g.undoCounted = counted }
}

// WithNoOpRecorded controls whether a move with an unknown direction,
// which leaves the cube unchanged, is still recorded and counted.
func WithNoOpRecorded(recorded bool) Option {
	return func(g *Game) { g.noOpRecorded = recorded }
}

// WithClock replaces time.Now for the solve timer.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// Game is a cube session. All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	cube      *cube.Cube
	moveCount int
	history   *History

	capacity     int
	undoCounted  bool
	noOpRecorded bool

	now       func() time.Time
	startedAt time.Time
	solvedAt  time.Time
}

// New creates a session with a solved cube, zero moves and empty history.
func New(opts ...Option) *Game {
	g := &Game{
		capacity:     DefaultHistoryCapacity,
		undoCounted:  true,
		noOpRecorded: true,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.cube = cube.New()
	g.history = NewHistory(g.capacity)
	g.startedAt = g.now()
	return g
}

// Move rotates face in direction dir and reports whether the cube is solved.
// An invalid face returns cube.ErrInvalidFace; nothing is recorded.
func (g *Game) Move(face cube.Face, dir cube.Direction) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.cube.Rotate(face, dir); err != nil {
		return false, err
	}

	if dir.Valid() || g.noOpRecorded {
		g.history.Push(cube.Move{Face: face, Direction: dir})
		g.moveCount++
	}
	return g.checkSolvedLocked(), nil
}

// Undo reverts the newest recorded move.
// It returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.history.Pop()
	if !ok {
		return false
	}

	inv := m.Inverse()
	//nolint:errcheck // recorded faces are always valid
	g.cube.Rotate(inv.Face, inv.Direction)
	if g.undoCounted {
		g.moveCount++
	}
	g.checkSolvedLocked()
	return true
}

// Restart resets to a solved cube with no moves and an empty history.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cube.Reset()
	g.resetLocked()
}

// Shuffle applies n random moves and starts a fresh attempt from the
// scrambled cube. The scramble is not counted and cannot be undone.
func (g *Game) Shuffle(rng *rand.Rand, n int) []cube.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cube.Reset()
	moves := g.cube.Randomize(rng, n)
	g.resetLocked()
	return moves
}

// MoveCount returns the number of counted moves since the last restart.
func (g *Game) MoveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moveCount
}

// HistoryLen returns how many moves can currently be undone.
func (g *Game) HistoryLen() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Len()
}

// HistoryCap returns how many moves the undo history can hold.
func (g *Game) HistoryCap() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Cap()
}

// LastMove returns the move the next Undo would revert.
func (g *Game) LastMove() (cube.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Peek()
}

// History returns the undoable moves, oldest first.
func (g *Game) History() []cube.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history.Moves()
}

// Snapshot returns a copy of the facelet grid.
func (g *Game) Snapshot() cube.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cube.Snapshot()
}

// IsSolved reports whether every face shows a single color.
func (g *Game) IsSolved() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cube.IsSolved()
}

// Status returns Solved when the cube is solved, Playing otherwise.
func (g *Game) Status() Status {
	if g.IsSolved() {
		return Solved
	}
	return Playing
}

// Elapsed returns the time since the attempt started. Once the cube has been
// solved the timer stops at the first solve.
func (g *Game) Elapsed() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.solvedAt.IsZero() {
		return g.solvedAt.Sub(g.startedAt)
	}
	return g.now().Sub(g.startedAt)
}

func (g *Game) checkSolvedLocked() bool {
	solved := g.cube.IsSolved()
	if solved && g.solvedAt.IsZero() {
		g.solvedAt = g.now()
	}
	return solved
}

func (g *Game) resetLocked() {
	g.moveCount = 0
	g.history.Clear()
	g.startedAt = g.now()
	g.solvedAt = time.Time{}
}
