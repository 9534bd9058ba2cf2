package cube

// Sticker addresses one facelet.
type Sticker struct {
	Face Face
	Row  int
	Col  int
}

// index returns the flat index face*9 + row*3 + col.
func (s Sticker) index() int {
	return int(s.Face)*9 + s.Row*3 + s.Col
}

// Strip is the three stickers of a neighbor face that touch a turning face.
type Strip [3]Sticker

// Ring is the four strips around a face in clockwise travel order:
// a clockwise turn moves the content of Ring[i] into Ring[i+1].
type Ring [4]Strip

func row(f Face, r int, cols [3]int) Strip {
	return Strip{{f, r, cols[0]}, {f, r, cols[1]}, {f, r, cols[2]}}
}

func col(f Face, c int, rows [3]int) Strip {
	return Strip{{f, rows[0], c}, {f, rows[1], c}, {f, rows[2], c}}
}

var (
	fwd = [3]int{0, 1, 2}
	rev = [3]int{2, 1, 0}
)

// Rings holds the neighbor strips for every face.
//
// Net layout: Top above Front, Bottom below, Left | Front | Right | Back
// in a row. Reversed strips come from the fixed grid orientation of each
// face in that net.
var Rings = [FaceCount]Ring{
	Top:    {row(Front, 0, fwd), row(Left, 0, fwd), row(Back, 0, fwd), row(Right, 0, fwd)},
	Bottom: {row(Front, 2, fwd), row(Right, 2, fwd), row(Back, 2, fwd), row(Left, 2, fwd)},
	Left:   {col(Top, 0, fwd), col(Front, 0, fwd), col(Bottom, 0, fwd), col(Back, 2, rev)},
	Right:  {col(Front, 2, fwd), col(Top, 2, fwd), col(Back, 0, rev), col(Bottom, 2, fwd)},
	Front:  {row(Top, 2, fwd), col(Right, 0, fwd), row(Bottom, 0, rev), col(Left, 2, rev)},
	Back:   {row(Top, 0, fwd), col(Left, 0, rev), row(Bottom, 2, rev), col(Right, 2, fwd)},
}

// Permutation maps each flat destination index to the flat source index
// it is read from.
type Permutation [FaceCount * 9]uint8

// permutations is indexed [face][direction].
var permutations [FaceCount][2]Permutation

func init() {
	for _, f := range Faces {
		permutations[f][CW] = buildPermutation(f, CW)
		permutations[f][CCW] = buildPermutation(f, CCW)
	}
}

func buildPermutation(face Face, dir Direction) Permutation {
	var p Permutation
	for i := range p {
		p[i] = uint8(i)
	}

	// Face grid: CW is the transpose of the row-reversed grid,
	// CCW is the row-reversal of the transposed grid.
	for r := range 3 {
		for c := range 3 {
			dst := Sticker{face, r, c}
			var src Sticker
			if dir == CW {
				src = Sticker{face, 2 - c, r}
			} else {
				src = Sticker{face, c, 2 - r}
			}
			p[dst.index()] = uint8(src.index())
		}
	}

	ring := Rings[face]
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		for k := range ring[i] {
			a, b := ring[i][k], next[k]
			if dir == CW {
				p[b.index()] = uint8(a.index())
			} else {
				p[a.index()] = uint8(b.index())
			}
		}
	}

	return p
}
