package cubie

import "testing"

func TestParseMoveValidTokens(t *testing.T) {
	cases := []struct {
		token string
		want  Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"U", U},
		{"U'", UPrime},
		{"U2", U2},
		{"L'", LPrime},
		{"D2", D2},
		{"F", F},
		{"B'", BPrime},
	}

	for _, tc := range cases {
		got, err := ParseMove(tc.token)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestParseMoveInvalidTokens(t *testing.T) {
	for _, token := range []string{"", "Q", "X", "R3", "R''", "RU", "2R", "r", "u'"} {
		if _, err := ParseMove(token); err != ErrInvalidMove {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidMove", token, err)
		}
	}
}

func TestParseMovesFailsAtFirstInvalidToken(t *testing.T) {
	moves, err := ParseMoves("R U Q F")
	if err != ErrInvalidMove {
		t.Errorf("ParseMoves = %v, want ErrInvalidMove", err)
	}
	if moves != nil {
		t.Errorf("ParseMoves should discard partial results, got %v", moves)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if parsed != m {
			t.Errorf("round trip of %s gave %s", m, parsed)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	got := FormatMoves([]Move{R, UPrime, F2})
	if got != "R U' F2" {
		t.Errorf("FormatMoves = %q, want %q", got, "R U' F2")
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}
}

func TestMoveMerge(t *testing.T) {
	cases := []struct {
		a, b Move
		want *Move
	}{
		{R, R, &R2},
		{R, RPrime, nil},
		{R2, R2, nil},
		{R, R2, &RPrime},
		{R, U, nil},
	}

	for _, tc := range cases {
		got := tc.a.Merge(tc.b)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s.Merge(%s) = %v, want nil", tc.a, tc.b, got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("%s.Merge(%s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsCancellation(t *testing.T) {
	if !R.IsCancellation(RPrime) {
		t.Error("R' should cancel R")
	}
	if !R2.IsCancellation(R2) {
		t.Error("R2 should cancel R2")
	}
	if R.IsCancellation(U) {
		t.Error("U should not cancel R")
	}
}
