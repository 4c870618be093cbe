package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares packed into 64 bits.
// Bit n corresponds to Square(n), so bit 0 = A8 and bit 63 = H1.
type SquareSet uint64

// EmptySet contains no squares.
const EmptySet SquareSet = 0

// SetOf returns a set containing the given squares. Invalid squares are ignored.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq added.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s | 1<<sq
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s &^ (1 << sq)
}

// Has returns true if sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.IsValid() && s&(1<<sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if no squares are set.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// First returns the lowest square in the set, or NoSquare.
func (s SquareSet) First() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// PopFirst removes and returns the lowest square in the set.
func (s *SquareSet) PopFirst() Square {
	sq := s.First()
	*s &= *s - 1
	return sq
}

// Squares returns the squares of the set in index order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for s != 0 {
		squares = append(squares, s.PopFirst())
	}
	return squares
}

// String returns the set as an 8x8 grid, 8th rank first.
func (s SquareSet) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		sb.WriteByte(byte('8' - rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if s.Has(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
