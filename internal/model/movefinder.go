package model

import "fmt"

// LegalMoves returns every move p may make without leaving its own king attacked.
func (b *Board) LegalMoves(p *Piece) []Move {
	return b.Moves(p, false)
}

// Moves returns p's candidate moves that pass IsLegal(ignoreSelfCheck).
func (b *Board) Moves(p *Piece, ignoreSelfCheck bool) []Move {
	var out []Move
	for _, m := range b.candidates(p, true) {
		if m.IsLegal(ignoreSelfCheck) {
			out = append(out, m)
		}
	}
	return out
}

// candidates builds the raw shape moves for p, before any self-check filtering.
// Castling is left out when the caller only wants the attack shape.
func (b *Board) candidates(p *Piece, castling bool) []Move {
	if b.at(p.Coord()).piece != p {
		panic(fmt.Errorf("%w: %s is not on this board", ErrStaleMove, p))
	}
	switch p.Type {
	case Pawn:
		return b.pawnMoves(p)
	case Knight:
		return b.jumpMoves(p, knightOffsets)
	case Bishop, Rook, Queen:
		return b.rangedMoves(p)
	case King:
		moves := b.jumpMoves(p, kingOffsets)
		if castling {
			moves = append(moves, b.castleMoves(p)...)
		}
		return moves
	}
	panic(fmt.Sprintf("model: unknown piece type %q", p.Type))
}

// jumpMoves lands on each offset square that is vacant or hostile. Nothing in between matters.
func (b *Board) jumpMoves(p *Piece, offsets []Coord) []Move {
	var moves []Move
	for _, t := range offsetSquares(p.Coord(), offsets) {
		if pos := b.at(t); pos.IsVacant() || pos.IsHostile(p.Color) {
			moves = append(moves, newStandardMove(b, p, t, true))
		}
	}
	return moves
}

// rangedMoves scans each bearing until the edge, a friendly piece (excluded) or a hostile
// piece (included, the ray ends on the capture).
func (b *Board) rangedMoves(p *Piece) []Move {
	var moves []Move
	from := p.Coord()
	for _, bearing := range p.Type.Bearings() {
		for t := from.Step(bearing); t.Valid(); t = t.Step(bearing) {
			pos := b.at(t)
			if pos.IsFriendly(p.Color) {
				break
			}
			moves = append(moves, newStandardMove(b, p, t, true))
			if pos.IsHostile(p.Color) {
				break
			}
		}
	}
	return moves
}
