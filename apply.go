package cubie

import "strings"

// apply performs one pull composition. Every destination slot is computed
// from the old arrays before the state is replaced, so the update is
// order-independent.
func (c *Cube) apply(d moveDefinition) {
	var corners [8]CornerSlot
	for i := range corners {
		src := c.Corners[d.cornerPerm[i]]
		corners[i] = CornerSlot{
			Piece:       src.Piece,
			Orientation: (src.Orientation + d.cornerTwist[i]) % 3,
		}
	}

	var edges [12]EdgeSlot
	for i := range edges {
		src := c.Edges[d.edgePerm[i]]
		edges[i] = EdgeSlot{
			Piece:       src.Piece,
			Orientation: (src.Orientation + d.edgeFlip[i]) % 2,
		}
	}

	c.Corners = corners
	c.Edges = edges
}

// ApplyMove applies a single move. Move values outside the 18 predefined
// constants do not exist, so there is no error path.
func (c *Cube) ApplyMove(m Move) {
	c.apply(moveTable[m])
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyToken parses a single notation token and applies it.
// Returns ErrInvalidMove without touching the state if the token is not
// one of the 18 canonical names.
func (c *Cube) ApplyToken(token string) error {
	d, err := lookupMove(token)
	if err != nil {
		return err
	}
	c.apply(d)
	return nil
}

// ApplyNotation applies a whitespace-separated move sequence strictly left
// to right. It stops at the first invalid token and returns ErrInvalidMove;
// moves before the bad token stay applied. Callers needing atomicity should
// Clone() first.
func (c *Cube) ApplyNotation(sequence string) error {
	for _, token := range strings.Fields(sequence) {
		if err := c.ApplyToken(token); err != nil {
			return err
		}
	}
	return nil
}

// RotateFace maps a numeric face/direction pair onto a canonical move:
// direction 1 is clockwise, -1 counter-clockwise, 2 or -2 a half turn.
// An out-of-range face or direction fails with ErrInvalidMove, the same
// way every other entry point fails.
func (c *Cube) RotateFace(face CubeFace, direction int) error {
	if face < 0 || face > 5 {
		return ErrInvalidMove
	}

	var turn Turn
	switch direction {
	case 1:
		turn = CW
	case -1:
		turn = CCW
	case 2, -2:
		turn = Double
	default:
		return ErrInvalidMove
	}

	c.ApplyMove(Move{Face: face.notationFace(), Turn: turn})
	return nil
}
