package cubie

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single outer-layer face turn. The 18 legal values are
// the cross product of the 6 faces and 3 turn directions; the predefined
// constants (R, RPrime, R2, ...) enumerate all of them.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Double && other.Turn == Double)
}

// Merge combines two same-face moves into one.
// Returns nil if the moves act on different faces or cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	combined := int(m.Turn) + int(other.Turn)
	// Normalize to [-2, 2]; -2 and 2 are the same half turn
	combined = ((combined+2)%4+4)%4 - 2
	if combined == -2 {
		combined = 2
	}
	if combined == 0 {
		return nil // Moves cancel out
	}

	return &Move{Face: m.Face, Turn: Turn(combined)}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidMove if the token is not one of the 18 canonical names.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidMove
	}

	var face Face
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	default:
		return Move{}, ErrInvalidMove
	}

	turn := CW // Bare face letter is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, ErrInvalidMove
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Parsing stops at the first invalid token and returns ErrInvalidMove;
// the moves parsed so far are discarded.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
