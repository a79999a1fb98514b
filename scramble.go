package cubie

import (
	"math/rand"
	"time"
)

// DefaultScrambleLength is the number of moves drawn when the caller does
// not ask for a specific length.
const DefaultScrambleLength = 25

// Scrambler draws moves uniformly at random from all 18 canonical moves.
// Consecutive draws are independent; a scramble may legally contain e.g.
// "R R'" back to back.
type Scrambler struct {
	rng *rand.Rand
}

// ScrambleOption configures a Scrambler.
type ScrambleOption func(*Scrambler)

// WithSeed makes the scrambler deterministic. A seed of 0 keeps the
// time-based default.
func WithSeed(seed int64) ScrambleOption {
	return func(s *Scrambler) {
		if seed != 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) ScrambleOption {
	return func(s *Scrambler) {
		s.rng = rng
	}
}

// NewScrambler creates a scrambler. Without options the source is seeded
// from the current time.
func NewScrambler(opts ...ScrambleOption) *Scrambler {
	s := &Scrambler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scramble applies length random moves to the cube and returns the exact
// sequence that was applied, as tokens joined by single spaces. A length
// of zero or less applies nothing and returns the empty string.
func (s *Scrambler) Scramble(c *Cube, length int) string {
	if length <= 0 {
		return ""
	}

	moves := make([]Move, length)
	for i := range moves {
		moves[i] = AllMoves[s.rng.Intn(len(AllMoves))]
	}
	c.Apply(moves...)

	return FormatMoves(moves)
}

// Scramble applies length random moves using a fresh time-seeded
// scrambler. For reproducible scrambles use a Scrambler with WithSeed.
func (c *Cube) Scramble(length int) string {
	return NewScrambler().Scramble(c, length)
}
