package model

import (
	"errors"
	"sort"
	"testing"
)

func at(row, col int, c Color, t PieceType) PlacedPiece {
	return PlacedPiece{At: Sq(row, col), Type: t, Color: c}
}

func moved(pp PlacedPiece) PlacedPiece {
	pp.HasMoved = true
	return pp
}

func mustBoard(t *testing.T, pieces ...PlacedPiece) *Board {
	t.Helper()
	b, err := NewBoard(pieces)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func pieceAt(t *testing.T, b *Board, row, col int) *Piece {
	t.Helper()
	p := b.PieceAt(Sq(row, col))
	if p == nil {
		t.Fatalf("no piece on %s", Sq(row, col))
	}
	return p
}

func destinations(moves []Move) []Coord {
	out := make([]Coord, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To())
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}

func assertCoords(t *testing.T, got []Coord, want ...Coord) {
	t.Helper()
	got = append([]Coord(nil), got...)
	sortCoords(got)
	sortCoords(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func hasDestination(moves []Move, c Coord) bool {
	for _, m := range moves {
		if m.To() == c {
			return true
		}
	}
	return false
}

func findMove(t *testing.T, moves []Move, to Coord) Move {
	t.Helper()
	for _, m := range moves {
		if m.To() == to {
			return m
		}
	}
	t.Fatalf("no move to %s among %v", to, destinations(moves))
	return nil
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", r, target)
		}
	}()
	fn()
}

// assertConsistent checks at-most-one occupant and the Position<->Piece back references.
func assertConsistent(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[*Piece]Coord)
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			pos := &b.cells[row][col]
			if pos.piece == nil {
				continue
			}
			if prev, dup := seen[pos.piece]; dup {
				t.Fatalf("%s occupies both %s and %s", pos.piece, prev, pos.coord)
			}
			seen[pos.piece] = pos.coord
			if pos.piece.position != pos {
				t.Fatalf("%s does not point back to %s", pos.piece, pos.coord)
			}
		}
	}
	for _, p := range b.pieces {
		if p.position != nil && p.position.piece != p {
			t.Fatalf("%s points to %s which holds %v", p, p.position.coord, p.position.piece)
		}
	}
}

func sameSnapshot(a, b map[Coord]*Piece) bool {
	if len(a) != len(b) {
		return false
	}
	for c, p := range a {
		if b[c] != p {
			return false
		}
	}
	return true
}
