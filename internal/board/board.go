package board

import "strings"

// CastlingRights represents the available castling options.
// The flags are parsed from FEN and are never revoked by Apply.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// castlingFlags pairs each flag with its FEN letter, in FEN order.
var castlingFlags = [4]struct {
	flag CastlingRights
	char byte
}{
	{WhiteKingSideCastle, 'K'},
	{WhiteQueenSideCastle, 'Q'},
	{BlackKingSideCastle, 'k'},
	{BlackQueenSideCastle, 'q'},
}

// Has returns true if every flag in f is set.
func (cr CastlingRights) Has(f CastlingRights) bool {
	return cr&f == f
}

// CanCastle returns true if the given side holds the right in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr.Has(WhiteKingSideCastle)
		}
		return cr.Has(WhiteQueenSideCastle)
	}
	if kingSide {
		return cr.Has(BlackKingSideCastle)
	}
	return cr.Has(BlackQueenSideCastle)
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	for _, cf := range castlingFlags {
		if cr.Has(cf.flag) {
			s += string(cf.char)
		}
	}
	return s
}

// Board is a chess position: what stands on each square, whose turn it is,
// the castling rights and the en passant target.
//
// Fields are exported so a collaborator can inspect and edit the position
// directly; Apply is the checked way to play a move. A Board is not safe for
// concurrent use.
type Board struct {
	Troops    [64]Troop
	Turn      Color
	Castling  CastlingRights
	EnPassant Square // Target square for en passant, NoSquare if none
}

// StartingBoard returns the standard starting position.
func StartingBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: starting position does not decode: " + err.Error())
	}
	return b
}

// Clone returns a copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// TroopAt returns the occupant of sq, or NoTroop if it is empty.
func (b *Board) TroopAt(sq Square) Troop {
	if !sq.IsValid() {
		return NoTroop
	}
	return b.Troops[sq]
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.TroopAt(sq).IsEmpty()
}

// Occupied returns the set of squares holding a troop of color c.
func (b *Board) Occupied(c Color) SquareSet {
	var s SquareSet
	for sq, t := range b.Troops {
		if !t.IsEmpty() && t.Color == c {
			s = s.Add(Square(sq))
		}
	}
	return s
}

// String renders the board as a grid of FEN letters, 8th rank first,
// followed by the side to move and the castling rights held:
//
//	|r|n|b|q|k|b|n|r|
//	...
//
//	White to move
//	 (K) (Q) (k) (q)
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		sb.WriteByte('|')
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.Troops[NewSquare(file, rank)].Char())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	sb.WriteString(b.Turn.String())
	sb.WriteString(" to move\n")
	for _, cf := range castlingFlags {
		if b.Castling.Has(cf.flag) {
			sb.WriteString(" (")
			sb.WriteByte(cf.char)
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
