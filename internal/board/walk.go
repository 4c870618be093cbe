package board

// Walk counts the leaf nodes of the pseudo-legal move tree at the given
// depth, playing each move with Apply on a copy of the board. Depth 0 counts
// the board itself.
func (b *Board) Walk(depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := b.Moves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := b.Clone()
		if _, err := next.Apply(m); err != nil {
			continue
		}
		nodes += next.Walk(depth - 1)
	}
	return nodes
}
