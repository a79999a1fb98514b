package cubie

import (
	"fmt"
	"strings"
)

// Corner slot indices in the cube's reference frame.
// Naming follows the faces each slot touches.
const (
	URF = iota // Up-Right-Front
	UFL        // Up-Front-Left
	ULB        // Up-Left-Back
	UBR        // Up-Back-Right
	DFR        // Down-Front-Right
	DLF        // Down-Left-Front
	DBL        // Down-Back-Left
	DRB        // Down-Right-Back
)

// Edge slot indices in the cube's reference frame.
const (
	UR = iota // Up-Right
	UF        // Up-Front
	UL        // Up-Left
	UB        // Up-Back
	DR        // Down-Right
	DF        // Down-Front
	DL        // Down-Left
	DB        // Down-Back
	FR        // Front-Right
	FL        // Front-Left
	BL        // Back-Left
	BR        // Back-Right
)

// CornerSlot records which corner piece occupies a slot and its twist.
type CornerSlot struct {
	Piece       uint8 // piece index, 0..7
	Orientation uint8 // twist relative to solved, 0..2
}

// EdgeSlot records which edge piece occupies a slot and its flip.
type EdgeSlot struct {
	Piece       uint8 // piece index, 0..11
	Orientation uint8 // flip relative to solved, 0..1
}

// Cube is the full cubie-level state: per fixed slot, the occupying piece
// and its orientation. Corner piece values are always a permutation of 0..7
// and edge piece values a permutation of 0..11; the move API cannot break
// that.
//
// A Cube is not safe for concurrent mutation. Use one instance per
// goroutine or provide external synchronization.
type Cube struct {
	Corners [8]CornerSlot
	Edges   [12]EdgeSlot
}

// New creates a cube in the solved state: slot i holds piece i with
// orientation 0.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores the solved state.
func (c *Cube) Reset() {
	for i := range c.Corners {
		c.Corners[i] = CornerSlot{Piece: uint8(i)}
	}
	for i := range c.Edges {
		c.Edges[i] = EdgeSlot{Piece: uint8(i)}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every slot holds its own piece with
// orientation 0.
func (c *Cube) IsSolved() bool {
	for i, s := range c.Corners {
		if s.Piece != uint8(i) || s.Orientation != 0 {
			return false
		}
	}
	for i, s := range c.Edges {
		if s.Piece != uint8(i) || s.Orientation != 0 {
			return false
		}
	}
	return true
}

// String returns a diagnostic dump of all 20 slots, corners then edges,
// as (piece, orientation) pairs in fixed slot order.
func (c *Cube) String() string {
	var b strings.Builder

	b.WriteString("corners:")
	for i, s := range c.Corners {
		fmt.Fprintf(&b, " C%d:(%d,%d)", i, s.Piece, s.Orientation)
	}
	b.WriteString("\nedges:  ")
	for i, s := range c.Edges {
		fmt.Fprintf(&b, " E%d:(%d,%d)", i, s.Piece, s.Orientation)
	}
	b.WriteString("\n")

	return b.String()
}
