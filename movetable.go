package cubie

// moveDefinition is the effect of one move as pull tables: for each
// destination slot i, perm[i] names the source slot whose piece moves into
// i, and the orientation delta is added to that piece's orientation
// (mod 3 for corners, mod 2 for edges). Definitions are built once and
// never mutated afterwards.
type moveDefinition struct {
	cornerPerm  [8]uint8
	cornerTwist [8]uint8
	edgePerm    [12]uint8
	edgeFlip    [12]uint8
}

// The six base quarter turns are the only hand-authored tables. Slot
// constants follow the URF.../UR... indexing in cube.go.
var baseDefinitions = map[Face]moveDefinition{
	FaceU: {
		cornerPerm:  [8]uint8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		cornerTwist: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		edgePerm:    [12]uint8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		edgeFlip:    [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceD: {
		cornerPerm:  [8]uint8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		cornerTwist: [8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
		edgePerm:    [12]uint8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		edgeFlip:    [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceR: {
		cornerPerm:  [8]uint8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		cornerTwist: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		edgePerm:    [12]uint8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		edgeFlip:    [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceL: {
		cornerPerm:  [8]uint8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		cornerTwist: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		edgePerm:    [12]uint8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		edgeFlip:    [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceF: {
		cornerPerm:  [8]uint8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		cornerTwist: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		edgePerm:    [12]uint8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		edgeFlip:    [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	FaceB: {
		cornerPerm:  [8]uint8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		cornerTwist: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		edgePerm:    [12]uint8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		edgeFlip:    [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// derive computes the definition equivalent to applying base the given
// number of times. Starting from a solved reference state, each slot of the
// result reads off directly as the composed permutation and accumulated
// orientation: with slot i initially holding piece i at orientation 0, the
// final piece in slot i is the composed source slot and the final
// orientation is the composed delta. A quarter turn has order 4, so
// derive(base, 2) is the half turn and derive(base, 3) the inverse.
func derive(base moveDefinition, repetitions int) moveDefinition {
	ref := New()
	for i := 0; i < repetitions; i++ {
		ref.apply(base)
	}

	var d moveDefinition
	for i, s := range ref.Corners {
		d.cornerPerm[i] = s.Piece
		d.cornerTwist[i] = s.Orientation
	}
	for i, s := range ref.Edges {
		d.edgePerm[i] = s.Piece
		d.edgeFlip[i] = s.Orientation
	}
	return d
}

// moveTable maps all 18 moves to their definitions. Built eagerly at
// package init; read-only for the process lifetime, so concurrent lookups
// need no locking.
var moveTable = buildMoveTable()

func buildMoveTable() map[Move]moveDefinition {
	table := make(map[Move]moveDefinition, 18)
	for face, base := range baseDefinitions {
		table[Move{Face: face, Turn: CW}] = base
		table[Move{Face: face, Turn: Double}] = derive(base, 2)
		table[Move{Face: face, Turn: CCW}] = derive(base, 3)
	}
	return table
}

// lookupMove resolves a notation token to its definition.
func lookupMove(token string) (moveDefinition, error) {
	m, err := ParseMove(token)
	if err != nil {
		return moveDefinition{}, err
	}
	return moveTable[m], nil
}
