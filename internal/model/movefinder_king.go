package model

// castleMoves returns one CastleMove per side whose preconditions all hold.
func (b *Board) castleMoves(k *Piece) []Move {
	if k.hasMoved {
		return nil
	}
	var moves []Move
	for _, side := range castleSides {
		if m := b.castleFor(k, side); m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

func (b *Board) castleFor(k *Piece, side CastleSide) *CastleMove {
	from := k.Coord()
	dir := side.direction()
	along := func(n int) Coord { return Coord{Row: from.Row, Col: from.Col + n*dir} }

	rook := b.PieceAt(along(side.rookDistance()))
	if rook == nil || rook.Type != Rook || rook.Color != k.Color || rook.hasMoved {
		return nil
	}
	for n := 1; n < side.rookDistance(); n++ {
		if !b.at(along(n)).IsVacant() {
			return nil
		}
	}
	if b.squareAttacked(from, k.Color) {
		return nil
	}
	// The king may not pass through or land on a square an enemy piece could take on.
	for n := 1; n <= 2; n++ {
		if b.squareAttacked(along(n), k.Color) {
			return nil
		}
	}
	return newCastleMove(b, k, rook, side)
}
