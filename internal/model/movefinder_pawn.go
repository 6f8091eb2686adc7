package model

func (b *Board) pawnMoves(p *Piece) []Move {
	var moves []Move
	from := p.Coord()
	fwd := p.Color.forward()

	one := from.Add(Coord{Row: fwd})
	if one.Valid() && b.at(one).IsVacant() {
		moves = append(moves, newStandardMove(b, p, one, false))
		two := one.Add(Coord{Row: fwd})
		if !p.hasMoved && two.Valid() && b.at(two).IsVacant() {
			moves = append(moves, newStandardMove(b, p, two, false))
		}
	}

	for _, dc := range []int{-1, 1} {
		t := from.Add(Coord{Row: fwd, Col: dc})
		if !t.Valid() {
			continue
		}
		pos := b.at(t)
		switch {
		case pos.IsHostile(p.Color):
			moves = append(moves, newStandardMove(b, p, t, true))
		case pos.IsVacant():
			beside := Coord{Row: from.Row, Col: from.Col + dc}
			if b.enPassantVictim(p, beside) != nil {
				moves = append(moves, newEnPassantMove(b, p, t, beside))
			}
		}
	}
	return moves
}

// enPassantVictim returns the enemy pawn on c if its double advance is the last move played.
func (b *Board) enPassantVictim(p *Piece, c Coord) *Piece {
	victim := b.PieceAt(c)
	if victim == nil || victim.Type != Pawn || !p.isHostile(victim) {
		return nil
	}
	last, ok := b.LastMove().(*StandardMove)
	if !ok || last.piece != victim || !last.IsDoubleAdvance() {
		return nil
	}
	return victim
}

// pawnAttacks reports whether c is one of p's forward diagonals and not held by its own side.
// Pawns threaten those squares whether or not anything stands there.
func (b *Board) pawnAttacks(p *Piece, c Coord) bool {
	from := p.Coord()
	if c.Row != from.Row+p.Color.forward() {
		return false
	}
	if dc := c.Col - from.Col; dc != 1 && dc != -1 {
		return false
	}
	return c.Valid() && !b.at(c).IsFriendly(p.Color)
}
