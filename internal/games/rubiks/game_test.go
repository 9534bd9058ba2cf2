package rubiks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/cube"
	"github.com/vovakirdan/tui-rubiks/internal/registry"
)

func testConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rubiks.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"rubiks", "rubiks_free"} {
		if !registry.Exists(id) {
			t.Errorf("game %q should be registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if ranked, expected := registry.IsRanked(g), id == "rubiks"; ranked != expected {
			t.Errorf("IsRanked(%q) = %v, expected %v", id, ranked, expected)
		}
	}
}

func TestResetReportsConfigError(t *testing.T) {
	testConfig(t, "gameplay: [\n")

	g := New()
	g.Reset(runtimeConfig(1))
	if g.ConfigErr() == nil {
		t.Fatal("ConfigErr() = nil for a malformed config, expected an error")
	}
	if got := len(g.Snapshot().Scramble); got != g.cfg.Gameplay.ShuffleMoves || got == 0 {
		t.Errorf("scramble length = %d, expected the default depth", got)
	}

	testConfig(t, "gameplay:\n  shuffle_moves: 4\n")
	g.Reset(runtimeConfig(1))
	if err := g.ConfigErr(); err != nil {
		t.Errorf("ConfigErr() = %v, expected nil", err)
	}
}

func TestShuffledReset(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 12\n")

	g := New()
	g.Reset(runtimeConfig(42))

	snap := g.Snapshot()
	if len(snap.Scramble) != 12 {
		t.Errorf("scramble length = %d, expected 12", len(snap.Scramble))
	}
	if snap.Moves != 0 || snap.HistoryLen != 0 {
		t.Errorf("fresh attempt should have no moves, got %d / %d", snap.Moves, snap.HistoryLen)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, expected %q", snap.State, StatePlaying)
	}
	if g.Session().IsSolved() {
		t.Error("shuffled cube should not start solved")
	}

	st := g.State()
	if st.ShuffleMoves != 12 {
		t.Errorf("ShuffleMoves = %d, expected 12", st.ShuffleMoves)
	}
	if st.Scramble != cube.FormatMoves(snap.Scramble) {
		t.Errorf("Scramble = %q, expected %q", st.Scramble, cube.FormatMoves(snap.Scramble))
	}
}

func TestDifficultyPreset(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 12\n")
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(runtimeConfig(1))
	if n := len(g.Snapshot().Scramble); n != 10 {
		t.Errorf("scramble length = %d, expected 10 for easy", n)
	}
}

func TestDeterministicScramble(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 30\n")

	a, b := New(), New()
	a.Reset(runtimeConfig(7))
	b.Reset(runtimeConfig(7))

	if a.Snapshot().Cube != b.Snapshot().Cube {
		t.Error("same seed should produce the same scramble")
	}
}

func TestFreePlaySolve(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(runtimeConfig(1))

	if !g.Session().IsSolved() {
		t.Fatal("free play should start solved")
	}
	if g.State().Solved {
		t.Error("a fresh free-play cube is not a solve")
	}
	if g.SelectedFace() != cube.Front {
		t.Errorf("SelectedFace() = %v, expected Front", g.SelectedFace())
	}

	res := g.Step(frame(core.ActionRight))
	if res.State.Solved || res.JustSolved {
		t.Error("Front CW should not solve the cube")
	}

	res = g.Step(frame(core.ActionLeft))
	if !res.JustSolved || !res.State.Solved {
		t.Error("Front CCW should solve the cube")
	}
	if res.State.Moves != 2 {
		t.Errorf("Moves = %d, expected 2", res.State.Moves)
	}

	// Moves are ignored after a solve until restart.
	res = g.Step(frame(core.ActionRight))
	if res.JustSolved {
		t.Error("JustSolved should only be set once")
	}
	if res.State.Moves != 2 {
		t.Errorf("moves after solve = %d, expected 2", res.State.Moves)
	}
	if g.Snapshot().State != StateSolved {
		t.Errorf("State = %q, expected %q", g.Snapshot().State, StateSolved)
	}

	g.Reset(runtimeConfig(2))
	if g.State().Solved || g.State().Moves != 0 {
		t.Error("Reset should start a new attempt")
	}
}

func TestFaceSelectionWraps(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(runtimeConfig(1))

	steps := []struct {
		action   core.Action
		expected cube.Face
	}{
		{core.ActionUp, cube.Right},
		{core.ActionDown, cube.Front},
		{core.ActionDown, cube.Back},
		{core.ActionDown, cube.Top},
		{core.ActionUp, cube.Back},
	}

	for i, s := range steps {
		g.Step(frame(s.action))
		if got := g.SelectedFace(); got != s.expected {
			t.Errorf("step %d (%v): SelectedFace() = %v, expected %v", i, s.action, got, s.expected)
		}
	}
}

func TestTurnUsesSelectedFace(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(runtimeConfig(1))
	g.Step(frame(core.ActionDown, core.ActionDown)) // same frame: one step down
	if g.SelectedFace() != cube.Back {
		t.Fatalf("SelectedFace() = %v, expected Back", g.SelectedFace())
	}

	g.Step(frame(core.ActionRight))

	history := g.Session().History()
	if len(history) != 1 || history[0] != (cube.Move{Face: cube.Back, Direction: cube.CW}) {
		t.Errorf("History() = %v, expected [B]", history)
	}
}

func TestUndoAction(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 5\n")

	g := New()
	g.Reset(runtimeConfig(3))
	start := g.Snapshot().Cube

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionUndo))
	g.Step(frame(core.ActionUndo))

	if g.Snapshot().Cube != start {
		t.Error("two undos should restore the scrambled state")
	}
	if g.State().Moves != 4 {
		t.Errorf("Moves = %d, expected 4 (undo counted by default)", g.State().Moves)
	}
}

func TestUndoNotCounted(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 5\n  count_undo: false\n")

	g := New()
	g.Reset(runtimeConfig(3))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionUndo))

	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.State().Moves)
	}
}

func TestPause(t *testing.T) {
	testConfig(t, "gameplay:\n  shuffle_moves: 5\n")

	g := New()
	g.Reset(runtimeConfig(3))

	g.Step(frame())
	g.Step(frame())
	if got := g.State().Elapsed; got != 200*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 200ms at 10 ticks/s", got)
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot().Cube
	g.Step(frame(core.ActionRight))
	g.Step(frame())
	if g.Snapshot().Cube != before {
		t.Error("turns must be ignored while paused")
	}
	if got := g.State().Elapsed; got != 200*time.Millisecond {
		t.Errorf("Elapsed while paused = %v, expected timer stopped at 200ms", got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestTooSmallAndResize(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %q, expected %q", g.Snapshot().State, StatePausedSmall)
	}
	g.Step(frame(core.ActionRight))
	if g.State().Moves != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message should be rendered")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionRight))
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d after resize, expected 1", g.State().Moves)
	}
}

func TestRender(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(runtimeConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	text := screen.String()

	for _, want := range []string{"Rubik's Cube (Free Play)", "Moves: 0", "Time: 0:00", "Face: Front (F)", "Undo: 0/100"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}

	netX := (80 - netWidth) / 2
	ox := netX + netPos[cube.Front][0]*faceStrideX
	oy := netY + netPos[cube.Front][1]*faceStrideY

	center := screen.GetCell(ox+1+faceletStep, oy+1)
	if center.Rune != faceletChar || center.Color != core.ColorRed {
		t.Errorf("Front center cell = %+v, expected red facelet", center)
	}
	if screen.Get(ox, oy+1) != markerLeft || screen.Get(ox+faceStrideX-1, oy+1) != markerRight {
		t.Error("selected face should be marked")
	}

	topX := netX + netPos[cube.Top][0]*faceStrideX
	if c := screen.GetCell(topX+1, netY); c.Color != core.ColorBrightWhite {
		t.Errorf("Top facelet color = %v, expected bright white", c.Color)
	}
}

func TestRenderSolvedOverlay(t *testing.T) {
	testConfig(t, "")

	g := NewFree()
	g.Reset(runtimeConfig(1))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionLeft))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	text := screen.String()

	if !strings.Contains(text, "SOLVED!") {
		t.Error("solved overlay should be shown")
	}
	if !strings.Contains(text, "2 moves in 0:00") {
		t.Errorf("solved overlay should report moves and time:\n%s", text)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{59*time.Second + 900*time.Millisecond, "0:59"},
		{61 * time.Second, "1:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}
