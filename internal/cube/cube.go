// Package cube provides a 3x3x3 Rubik's cube model: the facelet grid, the six
// face rotations and solved-state detection.
//
// It has no dependencies outside the standard library so the engine stays
// pure and testable. The platform layers render and drive it.
package cube

import (
	"errors"
	"math/rand"
	"strings"
)

// ErrInvalidFace is returned by Rotate when the face index is outside 0..5.
var ErrInvalidFace = errors.New("cube: invalid face")

// Facelet is the color id of a single sticker (0..5).
type Facelet uint8

// Face indexes one of the six faces of the cube.
type Face int

const (
	Top    Face = 0
	Bottom Face = 1
	Left   Face = 2
	Right  Face = 3
	Front  Face = 4
	Back   Face = 5
)

// FaceCount is the number of faces on a cube.
const FaceCount = 6

// Faces lists all faces in index order.
var Faces = [FaceCount]Face{Top, Bottom, Left, Right, Front, Back}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Top && f <= Back
}

func (f Face) String() string {
	switch f {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Front:
		return "Front"
	case Back:
		return "Back"
	default:
		return "?"
	}
}

// Notation returns the single-letter cube notation for the face (U D L R F B).
func (f Face) Notation() string {
	switch f {
	case Top:
		return "U"
	case Bottom:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	case Front:
		return "F"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Direction is the turn direction, viewed from outside the rotating face.
type Direction int

const (
	CW  Direction = 0 // Clockwise
	CCW Direction = 1 // Counter-clockwise
)

// Valid reports whether d is CW or CCW.
func (d Direction) Valid() bool {
	return d == CW || d == CCW
}

// Inverse returns the opposite direction.
// Values other than CW and CCW are returned unchanged.
func (d Direction) Inverse() Direction {
	switch d {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return d
	}
}

// Move is a single face turn.
type Move struct {
	Face      Face
	Direction Direction
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Direction: m.Direction.Inverse()}
}

// String returns standard notation: F, F'.
func (m Move) String() string {
	if m.Direction == CCW {
		return m.Face.Notation() + "'"
	}
	return m.Face.Notation()
}

// FormatMoves joins moves into a space-separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Grid is one face, indexed [row][col].
type Grid [3][3]Facelet

// State is the full facelet grid, indexed [face][row][col].
type State [FaceCount]Grid

// Cube is a 3x3x3 Rubik's cube.
// The zero value is not solved; use New.
type Cube struct {
	state State
}

// New creates a solved cube with face i filled with color i.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for f := range c.state {
		for r := range c.state[f] {
			for col := range c.state[f][r] {
				c.state[f][r][col] = Facelet(f)
			}
		}
	}
}

// Clone returns an independent copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Snapshot returns a copy of the facelet grid for rendering.
func (c *Cube) Snapshot() State {
	return c.state
}

// Rotate turns face in direction dir.
// An invalid face returns ErrInvalidFace and leaves the cube untouched.
// A direction other than CW or CCW is a no-op.
func (c *Cube) Rotate(face Face, dir Direction) error {
	if !face.Valid() {
		return ErrInvalidFace
	}
	if !dir.Valid() {
		return nil
	}

	src := c.state
	p := &permutations[face][dir]
	for dst, from := range p {
		*c.at(dst) = src.at(int(from))
	}
	return nil
}

// Apply rotates each move in order. It stops at the first error.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := c.Rotate(m.Face, m.Direction); err != nil {
			return err
		}
	}
	return nil
}

// Randomize applies n uniformly random moves and returns them oldest first.
func (c *Cube) Randomize(rng *rand.Rand, n int) []Move {
	if n <= 0 {
		return nil
	}
	moves := make([]Move, 0, n)
	for range n {
		m := Move{
			Face:      Face(rng.Intn(FaceCount)),
			Direction: Direction(rng.Intn(2)),
		}
		//nolint:errcheck // Face is always in range here
		c.Rotate(m.Face, m.Direction)
		moves = append(moves, m)
	}
	return moves
}

// IsValid reports whether every face shows a single color.
// The color does not have to match the face index.
func (c *Cube) IsValid() bool {
	for f := range c.state {
		want := c.state[f][0][0]
		for r := range c.state[f] {
			for col := range c.state[f][r] {
				if c.state[f][r][col] != want {
					return false
				}
			}
		}
	}
	return true
}

// IsSolved is an alias for IsValid.
func (c *Cube) IsSolved() bool {
	return c.IsValid()
}

// ColorCounts returns how many facelets carry each color.
// On any reachable cube every count is 9.
func (c *Cube) ColorCounts() [FaceCount]int {
	var counts [FaceCount]int
	for f := range c.state {
		for r := range c.state[f] {
			for _, v := range c.state[f][r] {
				if int(v) < FaceCount {
					counts[v]++
				}
			}
		}
	}
	return counts
}

// at returns a pointer to the facelet at flat index i (face*9 + row*3 + col).
func (c *Cube) at(i int) *Facelet {
	return &c.state[i/9][(i%9)/3][i%3]
}

// at returns the facelet at flat index i.
func (s *State) at(i int) Facelet {
	return s[i/9][(i%9)/3][i%3]
}

// String returns the unfolded net:
//
//	  U
//	L F R B
//	  D
//
// with one letter per facelet color.
func (c *Cube) String() string {
	var sb strings.Builder

	writeRow := func(face Face, row int) {
		for col := range 3 {
			sb.WriteString(colorLetter(c.state[face][row][col]))
			sb.WriteByte(' ')
		}
	}

	for row := range 3 {
		sb.WriteString("      ")
		writeRow(Top, row)
		sb.WriteByte('\n')
	}
	for row := range 3 {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(face, row)
		}
		sb.WriteByte('\n')
	}
	for row := range 3 {
		sb.WriteString("      ")
		writeRow(Bottom, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// colorLetter maps a facelet to the notation letter of its home face.
func colorLetter(f Facelet) string {
	if int(f) >= FaceCount {
		return "?"
	}
	return Face(f).Notation()
}
