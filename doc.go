// Package cubie models a 3x3 Rubik's cube as a permutation/orientation
// state machine over cubies (pieces), not stickers.
//
// # Features
//
//   - Cubie-level state: 8 corner slots and 12 edge slots, each tracking
//     which piece occupies it and that piece's twist or flip
//   - The 18 canonical outer-layer moves in Singmaster notation
//   - Double and inverse moves derived from the 6 base quarter turns,
//     never hand-transcribed
//   - Notation parsing for single moves and whitespace-separated sequences
//   - Seedable random scrambling
//   - Facelet (sticker color) projection for display adapters
//
// # Quick Start
//
// Create a solved cube and apply moves:
//
//	cube := cubie.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubie.R, cubie.U, cubie.RPrime, cubie.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Scrambling
//
// Scrambles draw uniformly from all 18 moves. Use a Scrambler with a fixed
// seed for reproducible sequences:
//
//	s := cubie.NewScrambler(cubie.WithSeed(42))
//	sequence := s.Scramble(cube, 25)
//	fmt.Println("Scramble:", sequence)
//
// # Predefined Moves
//
// The package provides all 18 moves as constants:
//
//	cubie.R      // Right clockwise
//	cubie.RPrime // Right counter-clockwise
//	cubie.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Display
//
// The core state is piece-based. Facelets() projects it onto the familiar
// 54-sticker representation for rendering:
//
//	net := cube.Facelets()
//	fmt.Println(net)
package cubie
