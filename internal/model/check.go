package model

// CanAttack reports whether p's shape reaches c as a capture. Self-check is ignored, which
// is what check detection and castling probes need.
func (b *Board) CanAttack(p *Piece, c Coord) bool {
	if p.IsCaptured() || !c.Valid() {
		return false
	}
	if p.Type == Pawn {
		return b.pawnAttacks(p, c)
	}
	for _, m := range b.candidates(p, false) {
		if m.CanCapture() && m.To() == c && m.IsLegal(true) {
			return true
		}
	}
	return false
}

// KingInCheck reports whether king's square is attacked. A king that has been taken off
// the board counts as attacked.
func (b *Board) KingInCheck(king *Piece) bool {
	if king.IsCaptured() {
		return true
	}
	return b.squareAttacked(king.Coord(), king.Color)
}

func (b *Board) InCheck(c Color) bool {
	return b.KingInCheck(b.kings[c])
}

// squareAttacked reports whether a piece hostile to defender could capture on c.
func (b *Board) squareAttacked(c Coord, defender Color) bool {
	return b.attackedByKnight(c, defender) || b.attackedAlongBearings(c, defender)
}

func (b *Board) attackedByKnight(c Coord, defender Color) bool {
	for _, t := range KnightSquares(c) {
		if pos := b.at(t); pos.IsHostile(defender) && pos.piece.Type == Knight {
			return true
		}
	}
	return false
}

func (b *Board) attackedAlongBearings(c Coord, defender Color) bool {
	for _, bearing := range AllBearings {
		if b.attackedAlong(c, defender, bearing) {
			return true
		}
	}
	return false
}

// attackedAlong lets the first piece met on the bearing decide: a friendly piece blocks,
// a hostile one attacks only if its own shape reaches c.
func (b *Board) attackedAlong(c Coord, defender Color, bearing Bearing) bool {
	for t := c.Step(bearing); t.Valid(); t = t.Step(bearing) {
		pos := b.at(t)
		if pos.IsVacant() {
			continue
		}
		if pos.IsFriendly(defender) {
			return false
		}
		return b.CanAttack(pos.piece, c)
	}
	return false
}
