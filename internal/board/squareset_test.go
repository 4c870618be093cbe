package board

import "testing"

func TestSquareSet(t *testing.T) {
	s := SetOf(E4, A8, H1, NoSquare)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(E4) || s.Has(E5) || s.Has(NoSquare) {
		t.Error("Has() disagrees with the members")
	}
	if s.First() != A8 {
		t.Errorf("First() = %v, want a8", s.First())
	}

	got := s.Squares()
	want := []Square{A8, E4, H1}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	s = s.Remove(E4).Remove(NoSquare)
	if s.Has(E4) || s.Len() != 2 {
		t.Errorf("Remove(e4) left %v", s.Squares())
	}

	if !EmptySet.IsEmpty() || EmptySet.First() != NoSquare {
		t.Error("EmptySet is not empty")
	}
}

func TestSquareSetString(t *testing.T) {
	want := "" +
		"8 1 . . . . . . . \n" +
		"7 . . . . . . . . \n" +
		"6 . . . . . . . . \n" +
		"5 . . . . . . . . \n" +
		"4 . . . . 1 . . . \n" +
		"3 . . . . . . . . \n" +
		"2 . . . . . . . . \n" +
		"1 . . . . . . . 1 \n" +
		"  a b c d e f g h\n"
	if got := SetOf(A8, E4, H1).String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
