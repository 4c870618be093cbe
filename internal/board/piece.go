package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceKind represents the kind of a chess piece.
// The zero value is NoPieceKind so that a zero Troop is an empty square.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (k PieceKind) Char() byte {
	switch k {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	default:
		return ' '
	}
}

// IsSliding returns true for pieces that move along rays (Rook, Bishop, Queen).
func (k PieceKind) IsSliding() bool {
	switch k {
	case Queen, Rook, Bishop:
		return true
	default:
		return false
	}
}

// directions returns the ray directions of a sliding piece kind.
func (k PieceKind) directions() []Direction {
	switch k {
	case Queen:
		return allDirections[:]
	case Rook:
		return orthogonalDirections
	case Bishop:
		return diagonalDirections
	default:
		return nil
	}
}

// Troop is the occupant of a square: a piece kind paired with a side.
type Troop struct {
	Color Color
	Kind  PieceKind
}

// NoTroop is the occupant of an empty square.
var NoTroop = Troop{}

// NewTroop creates a Troop.
func NewTroop(c Color, k PieceKind) Troop {
	return Troop{Color: c, Kind: k}
}

// IsEmpty returns true if the troop represents an empty square.
func (t Troop) IsEmpty() bool {
	return t.Kind == NoPieceKind
}

// Char returns the FEN character for the troop.
// Uppercase for white, lowercase for black, a space for an empty square.
func (t Troop) Char() byte {
	c := t.Kind.Char()
	if t.Color == White && c != ' ' {
		c -= 'a' - 'A'
	}
	return c
}

// String returns the troop as "<Color> <Kind>", e.g. "White Pawn".
func (t Troop) String() string {
	if t.IsEmpty() {
		return "None"
	}
	return t.Color.String() + " " + t.Kind.String()
}

// TroopFromChar converts a FEN character to a Troop.
// The second result is false if the character is not a piece letter.
func TroopFromChar(c byte) (Troop, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}

	var kind PieceKind
	switch c {
	case 'K':
		kind = King
	case 'Q':
		kind = Queen
	case 'R':
		kind = Rook
	case 'B':
		kind = Bishop
	case 'N':
		kind = Knight
	case 'P':
		kind = Pawn
	default:
		return NoTroop, false
	}

	return NewTroop(color, kind), true
}
