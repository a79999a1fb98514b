package cubie

import (
	"strings"
	"testing"
)

func TestSolvedFacelets(t *testing.T) {
	f := New().Facelets()

	for face := CubeFace(0); face < 6; face++ {
		want := solvedColor(face)
		for i := 0; i < 9; i++ {
			if f[face][i] != want {
				t.Errorf("solved face %s position %d = %s, want %s",
					face, i, f[face][i], want)
			}
		}
	}
}

func TestCentersNeverMove(t *testing.T) {
	c := New()
	c.Scramble(50)
	f := c.Facelets()

	for face := CubeFace(0); face < 6; face++ {
		if f[face][4] != solvedColor(face) {
			t.Errorf("center of %s changed to %s", face, f[face][4])
		}
	}
}

func TestFaceletColorCounts(t *testing.T) {
	c := New()
	c.Scramble(50)
	f := c.Facelets()

	counts := make(map[Color]int)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			counts[f[face][i]]++
		}
	}

	for _, color := range []Color{White, Yellow, Green, Blue, Red, Orange} {
		if counts[color] != 9 {
			t.Errorf("color %s appears %d times, want 9", color, counts[color])
		}
	}
}

func TestUTurnMovesTopRowStickers(t *testing.T) {
	c := New()
	c.ApplyMove(U)
	f := c.Facelets()

	// U cycles the top rows F -> L -> B -> R -> F; the front top row now
	// shows the right face's color.
	for _, pos := range []int{0, 1, 2} {
		if f[CubeFaceF][pos] != Red {
			t.Errorf("after U, F top row position %d = %s, want R (Red)",
				pos, f[CubeFaceF][pos])
		}
		if f[CubeFaceR][pos] != Blue {
			t.Errorf("after U, R top row position %d = %s, want B (Blue)",
				pos, f[CubeFaceR][pos])
		}
	}
	// The U face itself only rotates, all stickers stay white.
	for i := 0; i < 9; i++ {
		if f[CubeFaceU][i] != White {
			t.Errorf("after U, U face position %d = %s, want W", i, f[CubeFaceU][i])
		}
	}
}

func TestNetLayout(t *testing.T) {
	net := New().Net()
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	// Middle rows carry four faces: L F R B.
	if !strings.HasPrefix(lines[3], "O O O G G G R R R B B B") {
		t.Errorf("unexpected middle row: %q", lines[3])
	}
}
