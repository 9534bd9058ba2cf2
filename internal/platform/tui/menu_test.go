package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/registry"
	"github.com/vovakirdan/tui-rubiks/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{solveAt: 1} })
}

func menuPress(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestMenuListsRegisteredModes(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "Scripted") {
		t.Error("menu should list registered modes")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	// Cursor stays in range.
	m = menuPress(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range len(m.items) + 2 {
		m = menuPress(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}

	m = menuPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("Enter should select a mode")
	}
	if m.Selected().GameID != m.items[len(m.items)-1].GameID {
		t.Errorf("Selected() = %q, expected %q", m.Selected().GameID, m.items[len(m.items)-1].GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !menuPress(t, m, tea.KeyMsg{Type: tea.KeyTab}).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}
	if !menuPress(t, m, runeKey("q")).IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuShowsBestSolve(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for _, moves := range []int{31, 24} {
		if _, err := store.SaveSolve(storage.SolveResult{GameID: "scripted", Moves: moves, Elapsed: time.Minute}); err != nil {
			t.Fatalf("SaveSolve failed: %v", err)
		}
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "best 24 moves") {
		t.Errorf("menu should show the best solve, got:\n%s", m.View())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0:00.0"},
		{5300 * time.Millisecond, "0:05.3"},
		{83*time.Second + 449*time.Millisecond, "1:23.4"},
	}

	for _, tc := range tests {
		if got := formatElapsed(tc.in); got != tc.expected {
			t.Errorf("formatElapsed(%v) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	s := NewSessionModel(nil, cfg, "tester", nil)
	if s.ID() == "" {
		t.Fatal("session should have an ID")
	}

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		ns, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		s = ns
	}

	// Pick the scripted mode.
	for i, item := range s.menu.items {
		if item.GameID == "scripted" {
			s.menu.cursor = i
		}
	}
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("selecting a mode should start a game")
	}

	// Solve, then go back.
	update(TickMsg{At: time.Now(), Loop: s.gameModel.loop})
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.gameModel != nil {
		t.Error("Back after a solve should return to the menu")
	}
	if s.quitting {
		t.Error("session should still be running")
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	update(runeKey("b"))
	if s.scoreboard != nil {
		t.Error("Back should close the scoreboard")
	}

	update(runeKey("q"))
	if !s.quitting {
		t.Error("q should end the session")
	}
}
