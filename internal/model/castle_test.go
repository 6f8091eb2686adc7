package model

import "testing"

func castlingBoard(t *testing.T, extra ...PlacedPiece) *Board {
	t.Helper()
	pieces := []PlacedPiece{
		at(0, 4, White, King), at(0, 0, White, Rook), at(0, 7, White, Rook),
		at(7, 4, Black, King),
	}
	return mustBoard(t, append(pieces, extra...)...)
}

func castleSidesOf(moves []Move) map[CastleSide]*CastleMove {
	out := make(map[CastleSide]*CastleMove)
	for _, m := range moves {
		if c, ok := m.(*CastleMove); ok {
			out[c.Side()] = c
		}
	}
	return out
}

func TestCastlingAvailableBothSides(t *testing.T) {
	b := castlingBoard(t)
	sides := castleSidesOf(b.LegalMoves(b.King(White)))
	if len(sides) != 2 {
		t.Fatalf("got %d castle moves, want 2", len(sides))
	}
	ks, qs := sides[KingSide], sides[QueenSide]
	if ks.To() != Sq(0, 6) || ks.RookFrom() != Sq(0, 7) || ks.RookTo() != Sq(0, 5) {
		t.Fatalf("king-side castle: king->%s rook %s->%s", ks.To(), ks.RookFrom(), ks.RookTo())
	}
	if qs.To() != Sq(0, 2) || qs.RookFrom() != Sq(0, 0) || qs.RookTo() != Sq(0, 3) {
		t.Fatalf("queen-side castle: king->%s rook %s->%s", qs.To(), qs.RookFrom(), qs.RookTo())
	}
	if ks.CanCapture() || ks.Captured() != nil {
		t.Fatal("castling never captures")
	}
}

func TestCastlingPreconditions(t *testing.T) {
	tests := []struct {
		name   string
		board  func(t *testing.T) *Board
		expect []CastleSide
	}{
		{
			name: "king has moved",
			board: func(t *testing.T) *Board {
				return mustBoard(t, moved(at(0, 4, White, King)), at(0, 0, White, Rook), at(0, 7, White, Rook), at(7, 4, Black, King))
			},
		},
		{
			name: "king-side rook has moved",
			board: func(t *testing.T) *Board {
				return mustBoard(t, at(0, 4, White, King), at(0, 0, White, Rook), moved(at(0, 7, White, Rook)), at(7, 4, Black, King))
			},
			expect: []CastleSide{QueenSide},
		},
		{
			name: "queen-side rook missing",
			board: func(t *testing.T) *Board {
				return mustBoard(t, at(0, 4, White, King), at(0, 7, White, Rook), at(7, 4, Black, King))
			},
			expect: []CastleSide{KingSide},
		},
		{
			name: "wrong piece in the corner",
			board: func(t *testing.T) *Board {
				return mustBoard(t, at(0, 4, White, King), at(0, 0, White, Queen), at(0, 7, White, Rook), at(7, 4, Black, King))
			},
			expect: []CastleSide{KingSide},
		},
		{
			name: "rook not on its starting square",
			board: func(t *testing.T) *Board {
				return mustBoard(t, at(0, 4, White, King), at(0, 0, White, Rook), at(0, 6, White, Rook), at(7, 4, Black, King))
			},
			expect: []CastleSide{QueenSide},
		},
		{
			name:   "knight between king and queen-side rook",
			board:  func(t *testing.T) *Board { return castlingBoard(t, at(0, 1, White, Knight)) },
			expect: []CastleSide{KingSide},
		},
		{
			name:   "bishop between king and king-side rook",
			board:  func(t *testing.T) *Board { return castlingBoard(t, at(0, 5, Black, Bishop)) },
			expect: []CastleSide{QueenSide},
		},
		{
			name:  "king in check",
			board: func(t *testing.T) *Board { return castlingBoard(t, at(5, 4, Black, Rook)) },
		},
		{
			name:   "king passes through attacked square",
			board:  func(t *testing.T) *Board { return castlingBoard(t, at(5, 5, Black, Rook)) },
			expect: []CastleSide{QueenSide},
		},
		{
			name:   "king lands on attacked square",
			board:  func(t *testing.T) *Board { return castlingBoard(t, at(5, 2, Black, Rook)) },
			expect: []CastleSide{KingSide},
		},
		{
			name:   "pawn guards the landing square",
			board:  func(t *testing.T) *Board { return castlingBoard(t, moved(at(1, 7, Black, Pawn))) },
			expect: []CastleSide{QueenSide},
		},
		{
			name:   "attacked rook-side square the king never crosses",
			board:  func(t *testing.T) *Board { return castlingBoard(t, at(5, 1, Black, Rook)) },
			expect: []CastleSide{KingSide, QueenSide},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board(t)
			sides := castleSidesOf(b.LegalMoves(b.King(White)))
			if len(sides) != len(tt.expect) {
				t.Fatalf("castle sides = %v, want %v", keys(sides), tt.expect)
			}
			for _, s := range tt.expect {
				if sides[s] == nil {
					t.Fatalf("missing %s castle, have %v", s, keys(sides))
				}
			}
		})
	}
}

func keys(m map[CastleSide]*CastleMove) []CastleSide {
	var out []CastleSide
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCastleExecuteAndReverse(t *testing.T) {
	b := castlingBoard(t)
	king, rook := b.King(White), pieceAt(t, b, 0, 7)
	before := b.Snapshot()

	castle := castleSidesOf(b.LegalMoves(king))[KingSide]
	castle.Execute()
	if b.PieceAt(Sq(0, 6)) != king || b.PieceAt(Sq(0, 5)) != rook {
		t.Fatal("castle should put the king on g1 and the rook on f1")
	}
	if b.PieceAt(Sq(0, 4)) != nil || b.PieceAt(Sq(0, 7)) != nil {
		t.Fatal("castle should vacate e1 and h1")
	}
	if b.LastMove() != Move(castle) || len(king.History()) != 1 || len(rook.History()) != 1 {
		t.Fatal("castle should be recorded for the board, the king and the rook")
	}
	assertConsistent(t, b)

	castle.Reverse()
	if !sameSnapshot(before, b.Snapshot()) {
		t.Fatal("reverse should restore the original occupancy")
	}
	if !king.HasMoved() || !rook.HasMoved() {
		t.Fatal("has-moved is never cleared by reverse")
	}
	if sides := castleSidesOf(b.LegalMoves(king)); len(sides) != 0 {
		t.Fatalf("a king that has castled once cannot castle again, got %v", keys(sides))
	}
}

func TestBlackCastlesQueenSide(t *testing.T) {
	b := mustBoard(t, at(0, 4, White, King), at(7, 4, Black, King), at(7, 0, Black, Rook))
	qs := castleSidesOf(b.LegalMoves(b.King(Black)))[QueenSide]
	if qs == nil {
		t.Fatal("black should be able to castle queen-side")
	}
	qs.Execute()
	if b.PieceAt(Sq(7, 2)) != b.King(Black) || b.PieceAt(Sq(7, 3)).Type != Rook {
		t.Fatal("black queen-side castle landed wrong")
	}
}

func TestCastleIsLegalOnOpenBoard(t *testing.T) {
	b := castlingBoard(t)
	castle := castleSidesOf(b.LegalMoves(b.King(White)))[KingSide]
	if !castle.IsLegal(false) {
		t.Fatal("castle should be legal on an open board")
	}
	if !castle.IsLegal(true) {
		t.Fatal("probe mode skips the self-check test")
	}
	castle.Execute()
	if castle.IsLegal(true) {
		t.Fatal("an executed castle is no longer in place")
	}
}
