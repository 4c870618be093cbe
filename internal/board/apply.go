package board

import (
	"errors"
	"fmt"
)

// Errors returned by Apply. The board is left untouched when any is returned.
var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrNoTroop       = errors.New("no troop on start square")
	ErrWrongTurn     = errors.New("troop does not belong to the side to move")
	ErrIllegalMove   = errors.New("illegal move")
)

// Applied records what Apply did.
type Applied struct {
	Move       Move
	Troop      Troop  // The troop that moved
	Captured   Troop  // NoTroop if nothing was captured
	CapturedAt Square // Differs from Move.End for en passant, NoSquare if no capture
	DoublePush bool
}

// IsCapture returns true if a troop was removed from the board.
func (a Applied) IsCapture() bool {
	return !a.Captured.IsEmpty()
}

// IsEnPassant returns true if the capture was made en passant.
func (a Applied) IsEnPassant() bool {
	return a.IsCapture() && a.CapturedAt != a.Move.End
}

// Apply plays m for the side to move.
//
// Every kind except the king must play one of Moves(). King moves are not
// generated, so a king may go to any square without a troop of its own color.
// Apply captures what stands on the destination, removes the bypassed pawn on
// an en passant capture, resets the en passant target (setting it after a
// double push) and hands the turn to the other side. Castling rights are left
// as they are.
func (b *Board) Apply(m Move) (Applied, error) {
	if !m.Start.IsValid() || !m.End.IsValid() {
		return Applied{}, fmt.Errorf("%w: %d-%d", ErrInvalidSquare, m.Start, m.End)
	}

	mover := b.Troops[m.Start]
	if mover.IsEmpty() {
		return Applied{}, fmt.Errorf("%w: %s", ErrNoTroop, m.Start)
	}
	if mover.Color != b.Turn {
		return Applied{}, fmt.Errorf("%w: %s on %s, %s to move", ErrWrongTurn, mover, m.Start, b.Turn)
	}
	if err := b.checkMove(m, mover); err != nil {
		return Applied{}, err
	}

	us := mover.Color
	applied := Applied{
		Move:       m,
		Troop:      mover,
		CapturedAt: NoSquare,
	}

	if target := b.Troops[m.End]; !target.IsEmpty() {
		applied.Captured = target
		applied.CapturedAt = m.End
	}

	if mover.Kind == Pawn && m.End == b.EnPassant && b.IsEmpty(m.End) {
		// The bypassed pawn sits one row behind the target, on the mover's side.
		behind := m.End.step(pawnRulesFor[us].forward, -1)
		if bypassed := b.Troops[behind]; bypassed.Kind == Pawn && bypassed.Color != us {
			applied.Captured = bypassed
			applied.CapturedAt = behind
			b.Troops[behind] = NoTroop
		}
	}

	b.Troops[m.Start] = NoTroop
	b.Troops[m.End] = mover

	b.EnPassant = NoSquare
	if mover.Kind == Pawn && abs(int(m.End)-int(m.Start)) == 16 {
		applied.DoublePush = true
		b.EnPassant = m.Start.step(pawnRulesFor[us].forward, 1)
	}

	b.Turn = us.Other()

	return applied, nil
}

// checkMove validates m for the moving troop.
func (b *Board) checkMove(m Move, mover Troop) error {
	if m.Start == m.End {
		return fmt.Errorf("%w: %s does not move", ErrIllegalMove, m)
	}

	switch mover.Kind {
	case King:
		if target := b.Troops[m.End]; !target.IsEmpty() && target.Color == mover.Color {
			return fmt.Errorf("%w: %s captures own %s", ErrIllegalMove, m, target)
		}
		return nil
	case Queen, Rook, Bishop, Knight, Pawn:
		if !containsMove(b.MovesFrom(m.Start), m) {
			return fmt.Errorf("%w: %s", ErrIllegalMove, m)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown piece kind on %s", ErrIllegalMove, m.Start)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
