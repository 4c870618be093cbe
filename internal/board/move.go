package board

import "fmt"

// Move is a candidate relocation of the troop on Start to End.
// Captures, en passant and double pushes are not tagged; compare the
// board before and after (or use the Applied record) to tell them apart.
type Move struct {
	Start Square
	End   Square
}

// NewMove creates a move.
func NewMove(start, end Square) Move {
	return Move{Start: start, End: end}
}

// String returns the coordinate form of the move (e.g., "e2e4").
func (m Move) String() string {
	return m.Start.String() + m.End.String()
}

// ParseMove parses a coordinate move string such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move string: %q", s)
	}

	start, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}

	end, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	return NewMove(start, end), nil
}

// containsMove returns true if moves contains m.
func containsMove(moves []Move, m Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}
