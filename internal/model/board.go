package model

import "fmt"

// Position is one square of the board. Its occupant, if any, points back to it.
type Position struct {
	coord Coord
	piece *Piece
}

func (p *Position) Coord() Coord  { return p.coord }
func (p *Position) Piece() *Piece { return p.piece }

func (p *Position) IsVacant() bool {
	return p.piece == nil
}

func (p *Position) IsHostile(c Color) bool {
	return p.piece != nil && p.piece.Color != c
}

func (p *Position) IsFriendly(c Color) bool {
	return p.piece != nil && p.piece.Color == c
}

func (p *Position) HasPieceType(t PieceType) bool {
	return p.piece != nil && p.piece.Type == t
}

func (p *Position) String() string {
	return p.coord.String()
}

// PlacedPiece describes one occupied square of an externally supplied placement.
type PlacedPiece struct {
	At       Coord     `json:"at"`
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

type Placement []PlacedPiece

// Board owns the 8x8 grid of positions and every piece placed on it, captured or not.
type Board struct {
	cells   [boardSize][boardSize]Position
	pieces  []*Piece
	kings   map[Color]*Piece
	history []Move

	simulating bool
}

// NewBoard builds a board from a placement. Each side needs exactly one king.
func NewBoard(placement Placement) (*Board, error) {
	b := &Board{kings: make(map[Color]*Piece, 2)}
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			b.cells[row][col].coord = Coord{Row: row, Col: col}
		}
	}

	for _, pp := range placement {
		if !pp.At.Valid() {
			return nil, fmt.Errorf("%w: square %s is off the board", ErrInvalidPlacement, pp.At)
		}
		if !pp.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown piece type %q", ErrInvalidPlacement, pp.Type)
		}
		if !pp.Color.Valid() {
			return nil, fmt.Errorf("%w: unknown colour %q", ErrInvalidPlacement, pp.Color)
		}
		pos := b.at(pp.At)
		if pos.piece != nil {
			return nil, fmt.Errorf("%w: square %s placed twice", ErrInvalidPlacement, pp.At)
		}
		piece := &Piece{Type: pp.Type, Color: pp.Color, Value: pp.Type.Value(), hasMoved: pp.HasMoved}
		if pp.Type == King {
			if _, dup := b.kings[pp.Color]; dup {
				return nil, fmt.Errorf("%w: %s has more than one king", ErrInvalidPlacement, pp.Color)
			}
			b.kings[pp.Color] = piece
		}
		piece.relocate(pos)
		b.pieces = append(b.pieces, piece)
	}

	for _, c := range []Color{White, Black} {
		if b.kings[c] == nil {
			return nil, fmt.Errorf("%w: %s has no king", ErrInvalidPlacement, c)
		}
	}
	for _, p := range b.pieces {
		p.king = b.kings[p.Color]
	}
	return b, nil
}

// Get returns the position at c, or ErrOutOfRange when c is off the board.
func (b *Board) Get(c Coord) (*Position, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	return &b.cells[c.Row][c.Col], nil
}

func (b *Board) InBounds(c Coord) bool {
	return c.Valid()
}

// at is Get for coordinates already known to be on the board.
func (b *Board) at(c Coord) *Position {
	if !c.Valid() {
		panic(fmt.Errorf("%w: %s", ErrOutOfRange, c))
	}
	return &b.cells[c.Row][c.Col]
}

// PieceAt returns the occupant of c, nil when c is vacant or off the board.
func (b *Board) PieceAt(c Coord) *Piece {
	if !c.Valid() {
		return nil
	}
	return b.cells[c.Row][c.Col].piece
}

// Pieces returns every piece of the side in placement order, captured ones included.
func (b *Board) Pieces(c Color) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// Captured returns the pieces of side c that have been taken off the board.
func (b *Board) Captured(c Color) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Color == c && p.position == nil {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) King(c Color) *Piece {
	return b.kings[c]
}

// LastMove returns the most recently committed move, nil before the first one.
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1]
}

// History returns the committed moves on this board, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

func (b *Board) pushHistory(m Move) {
	b.history = append(b.history, m)
}

// popHistory drops m from the ply log if it is the latest entry.
func (b *Board) popHistory(m Move) {
	if n := len(b.history); n > 0 && b.history[n-1] == m {
		b.history[n-1] = nil
		b.history = b.history[:n-1]
	}
}

// Placement describes the pieces still on the board, row by row from a1. Feeding it to
// NewBoard rebuilds the occupancy and has-moved flags but not the move history.
func (b *Board) Placement() Placement {
	var out Placement
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col].piece; p != nil {
				out = append(out, PlacedPiece{At: Coord{Row: row, Col: col}, Type: p.Type, Color: p.Color, HasMoved: p.hasMoved})
			}
		}
	}
	return out
}

// Snapshot maps every occupied square to its occupant.
func (b *Board) Snapshot() map[Coord]*Piece {
	out := make(map[Coord]*Piece, len(b.pieces))
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			if p := b.cells[row][col].piece; p != nil {
				out[Coord{Row: row, Col: col}] = p
			}
		}
	}
	return out
}
