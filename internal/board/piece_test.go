package board

import "testing"

func TestTroopChars(t *testing.T) {
	for _, c := range []byte("KQRBNPkqrbnp") {
		troop, ok := TroopFromChar(c)
		if !ok {
			t.Fatalf("TroopFromChar(%q) failed", c)
		}
		if got := troop.Char(); got != c {
			t.Errorf("TroopFromChar(%q).Char() = %q", c, got)
		}
	}

	for _, c := range []byte("xX0 /-") {
		if troop, ok := TroopFromChar(c); ok {
			t.Errorf("TroopFromChar(%q) = %v, want failure", c, troop)
		}
	}
}

func TestTroopString(t *testing.T) {
	if got := NewTroop(White, Pawn).String(); got != "White Pawn" {
		t.Errorf("String() = %q", got)
	}
	if got := NewTroop(Black, Queen).String(); got != "Black Queen" {
		t.Errorf("String() = %q", got)
	}
	if got := NoTroop.String(); got != "None" {
		t.Errorf("NoTroop.String() = %q", got)
	}
	if NoTroop.Char() != ' ' || !NoTroop.IsEmpty() {
		t.Error("NoTroop is not an empty square")
	}
	if !(Troop{}).IsEmpty() {
		t.Error("zero Troop is not empty")
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() does not swap colors")
	}
}

func TestSlidingDirections(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want int
	}{
		{Queen, 8}, {Rook, 4}, {Bishop, 4}, {Knight, 0}, {Pawn, 0}, {King, 0},
	}
	for _, tc := range tests {
		if got := len(tc.kind.directions()); got != tc.want {
			t.Errorf("%v has %d directions, want %d", tc.kind, got, tc.want)
		}
		if tc.kind.IsSliding() != (tc.want > 0) {
			t.Errorf("%v.IsSliding() = %v", tc.kind, tc.kind.IsSliding())
		}
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		cr   CastlingRights
		want string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{WhiteQueenSideCastle | BlackKingSideCastle, "Qk"},
	}
	for _, tc := range tests {
		if got := tc.cr.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
	if !AllCastling.CanCastle(Black, false) || NoCastling.CanCastle(White, true) {
		t.Error("CanCastle disagrees with the flags")
	}
}
