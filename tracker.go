package cubie

// Tracker wraps a Cube and observes the solved/not-solved transition as
// moves are applied. The cube has exactly two named states: SOLVED (the
// unique identity state) and NOT-SOLVED (everything else); SOLVED is both
// the initial state and revisitable.
type Tracker struct {
	cube        *Cube
	moves       []Move
	moveHistory bool
	wasSolved   bool
	onSolved    func()
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) TrackerOption {
	return func(t *Tracker) {
		t.moveHistory = enabled
	}
}

// WithSolvedCallback sets a callback that fires each time a move brings
// the cube from not-solved back to solved.
func WithSolvedCallback(cb func()) TrackerOption {
	return func(t *Tracker) {
		t.onSolved = cb
	}
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		cube:        New(),
		moveHistory: true,
		wasSolved:   true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Reset restores the solved state and clears the move history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.moves = t.moves[:0]
	t.wasSolved = true
}

// ApplyMove applies a move and fires the solved callback on a
// not-solved to solved transition.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	if t.moveHistory {
		t.moves = append(t.moves, m)
	}

	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved()
	}
	t.wasSolved = solved
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Moves returns the applied move history. Empty when history is disabled.
func (t *Tracker) Moves() []Move {
	return t.moves
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
