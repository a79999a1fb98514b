package cubie

import "errors"

// Sentinel errors for the cubie package.
var (
	// ErrInvalidMove is returned when a token or numeric face/direction pair
	// does not name one of the 18 canonical moves.
	ErrInvalidMove = errors.New("cubie: invalid move notation")
)
