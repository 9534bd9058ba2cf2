package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-rubiks/internal/core"
)

func TestScreenRendererPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "cube")
	s.SetColored(5, 1, '█', core.ColorRed)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	out := NewScreenRenderer(r).Render(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "cube  " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "cube  ")
	}
	if lines[1] != "     █" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "     █")
	}
}

func TestScreenRendererColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.ColorRed)
	s.SetColored(1, 0, 'y', core.ColorRed)
	s.SetColored(2, 0, 'z', core.ColorOrange)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	out := NewScreenRenderer(r).Render(s)

	if !strings.Contains(out, "xy") {
		t.Error("same-colored cells should render as one run")
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("colored cells should carry escape sequences")
	}
}
