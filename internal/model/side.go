package model

// LegalMovesFor collects the legal moves of every piece side c still has on the board.
func (b *Board) LegalMovesFor(c Color) []Move {
	var out []Move
	for _, p := range b.Pieces(c) {
		if p.IsCaptured() {
			continue
		}
		out = append(out, b.LegalMoves(p)...)
	}
	return out
}

func (b *Board) HasLegalMove(c Color) bool {
	for _, p := range b.Pieces(c) {
		if p.IsCaptured() {
			continue
		}
		for _, m := range b.candidates(p, true) {
			if m.IsLegal(false) {
				return true
			}
		}
	}
	return false
}

// IsCheckmated reports a king in check with no legal move anywhere on its side.
func (b *Board) IsCheckmated(c Color) bool {
	return b.InCheck(c) && !b.HasLegalMove(c)
}

// IsStalemated reports a side that is not in check yet cannot move.
func (b *Board) IsStalemated(c Color) bool {
	return !b.InCheck(c) && !b.HasLegalMove(c)
}
