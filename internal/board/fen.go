package board

import (
	"errors"
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN decoding errors. ParseFEN wraps them with the offending value.
var (
	ErrFieldCount = errors.New("invalid number of fields")
	ErrTurn       = errors.New("invalid turn character")
	ErrEnPassant  = errors.New("invalid en passant square")
	ErrRowCount   = errors.New("invalid number of rows")
	ErrRowWidth   = errors.New("invalid number of squares in row")
	ErrPieceChar  = errors.New("invalid character")
)

// ParseFEN parses a FEN string of six single-space separated fields and
// returns a Board. Leading and trailing whitespace is ignored.
// The halfmove clock and fullmove number are accepted but not kept.
// On error no Board is returned.
func ParseFEN(fen string) (*Board, error) {
	var parts []string
	if fen = strings.TrimSpace(fen); fen != "" {
		parts = strings.Split(fen, " ")
	}
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: need 6, got %d", ErrFieldCount, len(parts))
	}

	b := &Board{EnPassant: NoSquare}

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		b.Turn = White
	case "b":
		b.Turn = Black
	default:
		return nil, fmt.Errorf("%w: %q", ErrTurn, parts[1])
	}

	// Castling rights (field 2)
	b.Castling = parseCastlingRights(parts[2])

	// En passant square (field 3)
	if parts[3] != "-" {
		sq, err := parseEnPassant(parts[3])
		if err != nil {
			return nil, err
		}
		b.EnPassant = sq
	}

	// Piece placement (field 0)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	return b, nil
}

// parseCastlingRights sets a flag for each of K, Q, k and q present.
// Any other character, "-" included, is ignored.
func parseCastlingRights(castling string) CastlingRights {
	cr := NoCastling
	for _, cf := range castlingFlags {
		if strings.IndexByte(castling, cf.char) >= 0 {
			cr |= cf.flag
		}
	}
	return cr
}

// parseEnPassant decodes a file letter and rank digit into a square.
func parseEnPassant(field string) (Square, error) {
	if len(field) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrEnPassant, field)
	}

	file, rank := field[0], field[1]
	if file < 'a' || file > 'h' {
		return NoSquare, fmt.Errorf("%w: %q: unknown file %q", ErrEnPassant, field, file)
	}
	if rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q: rank out of range", ErrEnPassant, field)
	}

	return NewSquare(int(file-'a'), int('8'-rank)), nil
}

// parsePiecePlacement fills the board's troops from the placement field.
func parsePiecePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: need 8, got %d", ErrRowCount, len(rows))
	}

	for i, row := range rows {
		var troops []Troop

		for _, c := range row {
			if c >= '1' && c <= '8' {
				for n := 0; n < int(c-'0'); n++ {
					troops = append(troops, NoTroop)
				}
				continue
			}

			t, ok := NoTroop, false
			if c < 0x80 {
				t, ok = TroopFromChar(byte(c))
			}
			if !ok {
				return fmt.Errorf("%w %q in row %d", ErrPieceChar, c, i)
			}
			troops = append(troops, t)
		}

		if len(troops) != 8 {
			return fmt.Errorf("%w %d: got %d", ErrRowWidth, i, len(troops))
		}

		copy(b.Troops[i*8:(i+1)*8], troops)
	}

	return nil
}
