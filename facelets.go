package cubie

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace identifies a face by number, for callers that index faces
// rather than name them. This is distinct from Face, which is the
// notation letter.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

func (f CubeFace) notationFace() Face {
	switch f {
	case CubeFaceU:
		return FaceU
	case CubeFaceD:
		return FaceD
	case CubeFaceF:
		return FaceF
	case CubeFaceB:
		return FaceB
	case CubeFaceR:
		return FaceR
	default:
		return FaceL
	}
}

// solvedColor returns the color of a face when solved.
func solvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	default:
		return Orange
	}
}

// facelet addresses a sticker: face number plus position 0..8, indexed
//
//	0 1 2
//	3 4 5
//	6 7 8
type facelet struct {
	face CubeFace
	pos  int
}

// cornerFacelets lists, per corner slot, the three sticker positions it
// owns, starting with the U/D-facing one and continuing clockwise around
// the piece. cornerColors gives the matching sticker colors of the piece
// that lives in that slot when solved.
var cornerFacelets = [8][3]facelet{
	URF: {{CubeFaceU, 8}, {CubeFaceR, 0}, {CubeFaceF, 2}},
	UFL: {{CubeFaceU, 6}, {CubeFaceF, 0}, {CubeFaceL, 2}},
	ULB: {{CubeFaceU, 0}, {CubeFaceL, 0}, {CubeFaceB, 2}},
	UBR: {{CubeFaceU, 2}, {CubeFaceB, 0}, {CubeFaceR, 2}},
	DFR: {{CubeFaceD, 2}, {CubeFaceF, 8}, {CubeFaceR, 6}},
	DLF: {{CubeFaceD, 0}, {CubeFaceL, 8}, {CubeFaceF, 6}},
	DBL: {{CubeFaceD, 6}, {CubeFaceB, 8}, {CubeFaceL, 6}},
	DRB: {{CubeFaceD, 8}, {CubeFaceR, 8}, {CubeFaceB, 6}},
}

var cornerColors = [8][3]Color{
	URF: {White, Red, Green},
	UFL: {White, Green, Orange},
	ULB: {White, Orange, Blue},
	UBR: {White, Blue, Red},
	DFR: {Yellow, Green, Red},
	DLF: {Yellow, Orange, Green},
	DBL: {Yellow, Blue, Orange},
	DRB: {Yellow, Red, Blue},
}

// edgeFacelets and edgeColors follow the same scheme for the 12 edges.
var edgeFacelets = [12][2]facelet{
	UR: {{CubeFaceU, 5}, {CubeFaceR, 1}},
	UF: {{CubeFaceU, 7}, {CubeFaceF, 1}},
	UL: {{CubeFaceU, 3}, {CubeFaceL, 1}},
	UB: {{CubeFaceU, 1}, {CubeFaceB, 1}},
	DR: {{CubeFaceD, 5}, {CubeFaceR, 7}},
	DF: {{CubeFaceD, 1}, {CubeFaceF, 7}},
	DL: {{CubeFaceD, 3}, {CubeFaceL, 7}},
	DB: {{CubeFaceD, 7}, {CubeFaceB, 7}},
	FR: {{CubeFaceF, 5}, {CubeFaceR, 3}},
	FL: {{CubeFaceF, 3}, {CubeFaceL, 5}},
	BL: {{CubeFaceB, 5}, {CubeFaceL, 3}},
	BR: {{CubeFaceB, 3}, {CubeFaceR, 5}},
}

var edgeColors = [12][2]Color{
	UR: {White, Red},
	UF: {White, Green},
	UL: {White, Orange},
	UB: {White, Blue},
	DR: {Yellow, Red},
	DF: {Yellow, Green},
	DL: {Yellow, Orange},
	DB: {Yellow, Blue},
	FR: {Green, Red},
	FL: {Green, Orange},
	BL: {Blue, Orange},
	BR: {Blue, Red},
}

// Facelets holds the 54 sticker colors derived from a cubie state.
// Facelets[face][position] = color, with positions indexed row-major.
type Facelets [6][9]Color

// Facelets projects the cubie state onto sticker colors. The center of
// each face is fixed; every other sticker follows from which piece sits
// in its slot and how that piece is twisted or flipped.
func (c *Cube) Facelets() Facelets {
	var f Facelets

	for face := CubeFace(0); face < 6; face++ {
		f[face][4] = solvedColor(face)
	}

	for slot, s := range c.Corners {
		ori := int(s.Orientation)
		for k := 0; k < 3; k++ {
			dst := cornerFacelets[slot][(k+ori)%3]
			f[dst.face][dst.pos] = cornerColors[s.Piece][k]
		}
	}

	for slot, s := range c.Edges {
		ori := int(s.Orientation)
		for k := 0; k < 2; k++ {
			dst := edgeFacelets[slot][(k+ori)%2]
			f[dst.face][dst.pos] = edgeColors[s.Piece][k]
		}
	}

	return f
}

// String renders the facelets as an unfolded net:
//
//	      U
//	L  F  R  B
//	      D
func (f Facelets) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += f[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += f[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += f[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// Net is shorthand for rendering the current state's facelet net.
func (c *Cube) Net() string {
	return c.Facelets().String()
}
