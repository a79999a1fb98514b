package cubie

import "testing"

func TestMoveTableHasAll18Moves(t *testing.T) {
	if len(moveTable) != 18 {
		t.Fatalf("move table has %d entries, want 18", len(moveTable))
	}
	for _, m := range AllMoves {
		if _, ok := moveTable[m]; !ok {
			t.Errorf("move table missing %s", m)
		}
	}
}

func TestDerivedDoubleEqualsTwoQuarterTurns(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceR, FaceL, FaceF, FaceB}
	for _, f := range faces {
		base := Move{Face: f, Turn: CW}
		double := Move{Face: f, Turn: Double}

		twice := New()
		twice.Apply(base, base)

		once := New()
		once.ApplyMove(double)

		if *twice != *once {
			t.Errorf("%s applied twice should equal %s applied once", base, double)
		}
	}
}

func TestDerivedInverseEqualsThreeQuarterTurns(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceR, FaceL, FaceF, FaceB}
	for _, f := range faces {
		base := Move{Face: f, Turn: CW}
		prime := Move{Face: f, Turn: CCW}

		thrice := New()
		thrice.Apply(base, base, base)

		once := New()
		once.ApplyMove(prime)

		if *thrice != *once {
			t.Errorf("%s applied three times should equal %s applied once", base, prime)
		}
	}
}

func TestDeriveFourRepetitionsIsIdentity(t *testing.T) {
	for face, base := range baseDefinitions {
		d := derive(base, 4)
		for i := 0; i < 8; i++ {
			if d.cornerPerm[i] != uint8(i) || d.cornerTwist[i] != 0 {
				t.Errorf("derive(%s, 4) corner table is not the identity", face)
				break
			}
		}
		for i := 0; i < 12; i++ {
			if d.edgePerm[i] != uint8(i) || d.edgeFlip[i] != 0 {
				t.Errorf("derive(%s, 4) edge table is not the identity", face)
				break
			}
		}
	}
}

func TestBaseDefinitionsArePermutations(t *testing.T) {
	for face, base := range baseDefinitions {
		var corners [8]bool
		for _, src := range base.cornerPerm {
			if src > 7 || corners[src] {
				t.Fatalf("%s corner permutation is invalid", face)
			}
			corners[src] = true
		}
		var edges [12]bool
		for _, src := range base.edgePerm {
			if src > 11 || edges[src] {
				t.Fatalf("%s edge permutation is invalid", face)
			}
			edges[src] = true
		}
	}
}

// A quarter turn twists corners by a net multiple of 3 and flips edges by
// a net multiple of 2; anything else would make orientation unreachable
// territory representable.
func TestBaseDefinitionOrientationSums(t *testing.T) {
	for face, base := range baseDefinitions {
		twist := 0
		for _, d := range base.cornerTwist {
			if d > 2 {
				t.Fatalf("%s corner twist delta out of range", face)
			}
			twist += int(d)
		}
		if twist%3 != 0 {
			t.Errorf("%s corner twist deltas sum to %d, want a multiple of 3", face, twist)
		}

		flip := 0
		for _, d := range base.edgeFlip {
			if d > 1 {
				t.Fatalf("%s edge flip delta out of range", face)
			}
			flip += int(d)
		}
		if flip%2 != 0 {
			t.Errorf("%s edge flip deltas sum to %d, want a multiple of 2", face, flip)
		}
	}
}

func TestLookupMove(t *testing.T) {
	if _, err := lookupMove("R'"); err != nil {
		t.Errorf("lookupMove(R') = %v, want nil", err)
	}
	if _, err := lookupMove("R3"); err != ErrInvalidMove {
		t.Errorf("lookupMove(R3) = %v, want ErrInvalidMove", err)
	}
	if _, err := lookupMove(""); err != ErrInvalidMove {
		t.Errorf("lookupMove(\"\") = %v, want ErrInvalidMove", err)
	}
}
