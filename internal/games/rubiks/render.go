package rubiks

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-rubiks/internal/core"
	"github.com/vovakirdan/tui-rubiks/internal/cube"
)

// Net geometry. Each facelet is two cells wide with a one-cell gap, so a
// face is 10 columns (with a margin column on each side for the selection
// markers) and 3 rows plus a spacer row.
const (
	faceletChar  = '█'
	faceletW     = 2
	faceletStep  = 3
	faceStrideX  = 10
	faceStrideY  = 4
	netWidth     = 4 * faceStrideX
	netHeight    = 3*faceStrideY - 1
	netY         = 4
	markerLeft   = '▶'
	markerRight  = '◀'
	overlayWidth = 28
)

// netPos is the (column, row) of each face in the unfolded net:
//
//	  U
//	L F R B
//	  D
var netPos = [cube.FaceCount][2]int{
	cube.Top:    {1, 0},
	cube.Left:   {0, 1},
	cube.Front:  {1, 1},
	cube.Right:  {2, 1},
	cube.Back:   {3, 1},
	cube.Bottom: {1, 2},
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	netX := (g.screenW - netWidth) / 2
	g.renderHUD(dst, netX)
	g.renderNet(dst, netX, netY)
	g.renderControls(dst, netY+netHeight+1)
	g.renderOverlays(dst, netX)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderHUD draws the title, counters and the selected face.
func (g *Game) renderHUD(dst *core.Screen, netX int) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightWhite)

	st := g.State()
	dst.DrawText(netX, 1, fmt.Sprintf("Moves: %d", st.Moves))

	timeStr := "Time: " + formatDuration(st.Elapsed)
	dst.DrawTextCentered(1, timeStr)

	undoStr := fmt.Sprintf("Undo: %d/%d", g.session.HistoryLen(), g.session.HistoryCap())
	dst.DrawText(netX+netWidth-len(undoStr), 1, undoStr)

	face := g.SelectedFace()
	dst.DrawText(netX, 2, "Face: ")
	dst.DrawTextColored(netX+6, 2, fmt.Sprintf("%s (%s)", face, face.Notation()), core.ColorCyan)

	if last, ok := g.session.LastMove(); ok {
		dst.DrawTextCentered(2, "Last: "+last.String())
	}

	var info string
	if g.mode == ModeFree {
		info = "Free Play"
	} else {
		info = fmt.Sprintf("Scramble: %d", len(g.scramble))
	}
	dst.DrawText(netX+netWidth-len(info), 2, info)
}

// renderNet draws the six faces and the selection markers.
func (g *Game) renderNet(dst *core.Screen, x0, y0 int) {
	state := g.session.Snapshot()
	selected := g.SelectedFace()

	for _, f := range cube.Faces {
		ox := x0 + netPos[f][0]*faceStrideX
		oy := y0 + netPos[f][1]*faceStrideY

		for r := range 3 {
			for c := range 3 {
				col := g.faceletColor(state[f][r][c])
				x := ox + 1 + c*faceletStep
				for dx := range faceletW {
					dst.SetColored(x+dx, oy+r, faceletChar, col)
				}
			}
		}

		if f == selected {
			dst.SetColored(ox, oy+1, markerLeft, core.ColorBrightCyan)
			dst.SetColored(ox+faceStrideX-1, oy+1, markerRight, core.ColorBrightCyan)
		}
	}
}

func (g *Game) faceletColor(v cube.Facelet) core.Color {
	if int(v) >= len(g.palette) {
		return core.ColorGray
	}
	return g.palette[v]
}

// renderControls draws the key help below the net.
func (g *Game) renderControls(dst *core.Screen, y int) {
	dst.DrawTextCenteredColored(y, "↑/↓ Face   → Clockwise   ← Counter-clockwise", core.ColorGray)
	dst.DrawTextCenteredColored(y+1, "U Undo   P Pause   R Restart   Q Quit", core.ColorGray)
}

// renderOverlays draws pause and solved messages over the net.
func (g *Game) renderOverlays(dst *core.Screen, netX int) {
	var lines []string
	switch {
	case g.solved:
		st := g.State()
		lines = []string{
			"SOLVED!",
			fmt.Sprintf("%d moves in %s", st.Moves, formatDuration(st.Elapsed)),
			"R: new cube  Q: quit",
		}
	case g.paused:
		lines = []string{"PAUSED", "Press P to resume"}
	default:
		return
	}

	area := core.NewRect(netX, netY, netWidth, netHeight)
	box := area.Centered(overlayWidth, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// formatDuration renders d as m:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
