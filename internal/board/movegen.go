package board

// knightJump is an L-shaped jump: two steps along long, one along short.
type knightJump struct {
	long, short Direction
}

var knightJumps = [8]knightJump{
	{North, East}, {North, West},
	{South, East}, {South, West},
	{East, North}, {East, South},
	{West, North}, {West, South},
}

// pawnRules describes how pawns of one color move.
type pawnRules struct {
	forward   Direction
	captures  [2]Direction
	startRank int
}

var pawnRulesFor = [2]pawnRules{
	White: {forward: North, captures: [2]Direction{NorthWest, NorthEast}, startRank: 6},
	Black: {forward: South, captures: [2]Direction{SouthWest, SouthEast}, startRank: 1},
}

// Moves returns every pseudo-legal move for the side to move.
// Moves that leave the mover's own king attacked are included; king moves
// and castling are not generated. The order of the result is unspecified.
func (b *Board) Moves() []Move {
	moves := make([]Move, 0, 64)
	for sq := A8; sq <= H1; sq++ {
		t := b.Troops[sq]
		if t.IsEmpty() || t.Color != b.Turn {
			continue
		}
		moves = b.generateTroopMoves(moves, sq, t)
	}
	return b.dropSelfCaptures(moves)
}

// MovesFrom returns the pseudo-legal moves of the troop on sq.
// It returns nil if sq is empty or holds a troop of the side not to move.
func (b *Board) MovesFrom(sq Square) []Move {
	t := b.TroopAt(sq)
	if t.IsEmpty() || t.Color != b.Turn {
		return nil
	}
	return b.dropSelfCaptures(b.generateTroopMoves(nil, sq, t))
}

// Targets returns the destination squares of the troop on sq.
func (b *Board) Targets(sq Square) SquareSet {
	var s SquareSet
	for _, m := range b.MovesFrom(sq) {
		s = s.Add(m.End)
	}
	return s
}

// generateTroopMoves appends the raw candidate moves of t on sq.
func (b *Board) generateTroopMoves(moves []Move, sq Square, t Troop) []Move {
	switch t.Kind {
	case Queen, Rook, Bishop:
		return b.generateSlidingMoves(moves, sq, t.Kind)
	case Knight:
		return b.generateKnightMoves(moves, sq)
	case Pawn:
		return b.generatePawnMoves(moves, sq, t.Color)
	case King:
		return moves
	default:
		return moves
	}
}

// generateSlidingMoves walks each ray until the edge or the first occupied
// square. The blocker is kept as a candidate whatever its color.
func (b *Board) generateSlidingMoves(moves []Move, from Square, kind PieceKind) []Move {
	for _, d := range kind.directions() {
		for n := 1; n <= EdgeDistance(from, d); n++ {
			to := from.step(d, n)
			moves = append(moves, NewMove(from, to))
			if !b.IsEmpty(to) {
				break
			}
		}
	}
	return moves
}

// generateKnightMoves adds every jump that stays on the board.
func (b *Board) generateKnightMoves(moves []Move, from Square) []Move {
	for _, j := range knightJumps {
		if EdgeDistance(from, j.long) < 2 || EdgeDistance(from, j.short) < 1 {
			continue
		}
		to := from.step(j.long, 2).step(j.short, 1)
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

// generatePawnMoves adds pushes, double pushes from the start rank, and
// diagonal steps onto an occupied square or the en passant target.
func (b *Board) generatePawnMoves(moves []Move, from Square, us Color) []Move {
	rules := pawnRulesFor[us]

	if EdgeDistance(from, rules.forward) >= 1 {
		one := from.step(rules.forward, 1)
		if b.IsEmpty(one) {
			moves = appendOnBoard(moves, from, one)

			if from.Rank() == rules.startRank {
				two := one.step(rules.forward, 1)
				if b.IsEmpty(two) {
					moves = appendOnBoard(moves, from, two)
				}
			}
		}
	}

	for _, d := range rules.captures {
		if EdgeDistance(from, d) < 1 {
			continue
		}
		to := from.step(d, 1)
		if !b.IsEmpty(to) || to == b.EnPassant {
			moves = appendOnBoard(moves, from, to)
		}
	}

	return moves
}

// appendOnBoard appends the move unless its destination is off the board.
func appendOnBoard(moves []Move, from, to Square) []Move {
	if !to.IsValid() {
		return moves
	}
	return append(moves, NewMove(from, to))
}

// dropSelfCaptures removes, in place, moves landing on a troop of the
// mover's own color.
func (b *Board) dropSelfCaptures(moves []Move) []Move {
	kept := moves[:0]
	for _, m := range moves {
		mover := b.Troops[m.Start]
		target := b.Troops[m.End]
		if !target.IsEmpty() && target.Color == mover.Color {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
