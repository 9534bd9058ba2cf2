// Package rubiks implements the Rubik's Cube game: a shuffled cube the
// player turns face by face until every face shows one color.
package rubiks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-rubiks/internal/config"
	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/cube"
	"github.com/vovakirdan/tui-rubiks/internal/game"
	"github.com/vovakirdan/tui-rubiks/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeShuffled Mode = "shuffled"
	ModeFree     Mode = "free"
)

// Minimum terminal size: HUD, net and controls.
const (
	minWidth  = netWidth + 2
	minHeight = netY + netHeight + 3
)

// faceOrder is the order the selector cycles through.
var faceOrder = cube.Faces

// Package-level settings from the CLI, applied on Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the scramble depth preset (easy, normal, hard, fixed).
// Unknown values fall back to the configured depth.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParseDifficultyPreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game is the platform adapter around a cube session.
type Game struct {
	mode    Mode
	cfg     config.RubiksConfig
	palette [cube.FaceCount]core.Color

	session  *game.Game
	rng      *rand.Rand
	scramble []cube.Move
	selected int // index into faceOrder

	tick     uint64
	tickDur  time.Duration
	playTime time.Duration // advances only while playing

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	solved   bool

	configErr error // why the last Reset fell back to defaults
}

// New creates a shuffled-start game.
func New() *Game {
	return &Game{mode: ModeShuffled}
}

// NewFree creates a free-play game that starts solved.
func NewFree() *Game {
	return &Game{mode: ModeFree}
}

func init() {
	registry.Register("rubiks", func() registry.Game {
		return New()
	})
	registry.Register("rubiks_free", func() registry.Game {
		return NewFree()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "rubiks_free"
	}
	return "rubiks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "Rubik's Cube (Free Play)"
	}
	return "Rubik's Cube"
}

// Unranked reports true for free play: a solve from a solved start is not a record.
func (g *Game) Unranked() bool {
	return g.mode == ModeFree
}

// ConfigErr returns the config load error of the last Reset, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Reset starts a new attempt.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadRubiks(configPath)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultRubiksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRubiksPreset(&cfg, difficultyPreset)
	}
	g.applyConfig(cfg)

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.playTime = 0
	g.paused = false
	g.selected = indexOf(cube.Front)

	g.session = game.New(
		game.WithHistoryCapacity(g.cfg.Gameplay.HistoryCapacity),
		game.WithUndoCounted(g.cfg.Gameplay.CountUndo),
		game.WithNoOpRecorded(g.cfg.Gameplay.RecordNoOp),
		game.WithClock(g.clock),
	)

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.scramble = nil
	g.solved = false
	if g.mode == ModeShuffled {
		g.shuffle(g.cfg.Gameplay.ShuffleMoves)
	}

	g.Resize(rt.ScreenW, rt.ScreenH)
}

// shuffle scrambles the cube with n moves. A scramble that happens to
// cancel itself out is retried a few times.
func (g *Game) shuffle(n int) {
	g.scramble = g.session.Shuffle(g.rng, n)
	for range 8 {
		if n == 0 || !g.session.IsSolved() {
			return
		}
		g.scramble = g.session.Shuffle(g.rng, n)
	}
}

// applyConfig installs cfg, falling back to defaults for an unusable palette.
func (g *Game) applyConfig(cfg config.RubiksConfig) {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		cfg.Colors = config.DefaultRubiksConfig().Colors
		palette, _ = cfg.Colors.Palette()
	}
	g.cfg = cfg
	g.palette = palette
}

// Resize updates the screen size without touching the cube.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// clock is the session's time source: play time measured in ticks.
func (g *Game) clock() time.Time {
	return time.Unix(0, 0).Add(g.playTime)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Nothing is playable after a solve until the platform restarts us.
	if g.solved {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.playTime += g.tickDur

	if in.Has(core.ActionUp) {
		g.selected = core.Wrap(g.selected-1, len(faceOrder))
	}
	if in.Has(core.ActionDown) {
		g.selected = core.Wrap(g.selected+1, len(faceOrder))
	}

	switch {
	case in.Has(core.ActionRight):
		g.turn(cube.CW)
	case in.Has(core.ActionLeft):
		g.turn(cube.CCW)
	case in.Has(core.ActionUndo):
		g.session.Undo()
	}

	justSolved := false
	if !g.solved && g.session.MoveCount() > 0 && g.session.Status() == game.Solved {
		g.solved = true
		justSolved = true
	}

	return core.StepResult{State: g.State(), JustSolved: justSolved}
}

func (g *Game) turn(dir cube.Direction) {
	//nolint:errcheck // the selected face is always valid
	g.session.Move(g.SelectedFace(), dir)
}

// SelectedFace returns the face the next turn applies to.
func (g *Game) SelectedFace() cube.Face {
	return faceOrder[g.selected]
}

// Session exposes the underlying cube session.
func (g *Game) Session() *game.Game {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Solved:       g.solved,
		Paused:       g.paused || g.tooSmall,
		ShuffleMoves: len(g.scramble),
		Scramble:     cube.FormatMoves(g.scramble),
	}
	if g.session != nil {
		st.Moves = g.session.MoveCount()
		st.Elapsed = g.session.Elapsed()
	}
	return st
}

func indexOf(f cube.Face) int {
	for i, o := range faceOrder {
		if o == f {
			return i
		}
	}
	return 0
}
