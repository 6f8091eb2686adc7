package model

import "fmt"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// forward is the row step a pawn of this colour advances by.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Value is the conventional material value; the king is priceless and counts as zero.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// Bearings lists the scan directions of a sliding piece, nil for everything else.
func (p PieceType) Bearings() []Bearing {
	switch p {
	case Bishop:
		return DiagonalBearings
	case Rook:
		return StraightBearings
	case Queen:
		return AllBearings
	}
	return nil
}

// Piece is a single chess man. Its position is owned by the Board: only moves relocate it.
type Piece struct {
	Type  PieceType
	Color Color
	Value int

	position *Position
	hasMoved bool
	king     *Piece
	history  []Move
}

func (p *Piece) String() string {
	if p.position == nil {
		return fmt.Sprintf("%s %s (captured)", p.Color, p.Type)
	}
	return fmt.Sprintf("%s %s on %s", p.Color, p.Type, p.position.coord)
}

// Position returns the square the piece stands on, or nil once captured.
func (p *Piece) Position() *Position {
	return p.position
}

// Coord returns the piece's square. Asking a captured piece panics.
func (p *Piece) Coord() Coord {
	if p.position == nil {
		panic(fmt.Errorf("%w: %s %s", ErrPieceCaptured, p.Color, p.Type))
	}
	return p.position.coord
}

func (p *Piece) IsCaptured() bool {
	return p.position == nil
}

// HasMoved reports whether the piece ever completed a move. It is never reset.
func (p *Piece) HasMoved() bool {
	return p.hasMoved
}

// King returns the king of the piece's side; a king returns itself.
func (p *Piece) King() *Piece {
	return p.king
}

// History returns the committed moves this piece took part in, oldest first.
func (p *Piece) History() []Move {
	out := make([]Move, len(p.history))
	copy(out, p.history)
	return out
}

func (p *Piece) isHostile(o *Piece) bool {
	return o != nil && o.Color != p.Color
}

// relocate detaches the piece from its square and attaches it to dst (nil means off-board).
// It is the only place occupancy changes, keeping Position.piece and Piece.position in step.
func (p *Piece) relocate(dst *Position) {
	if dst != nil && dst.piece != nil && dst.piece != p {
		panic(fmt.Errorf("%w: %s is occupied by %s", ErrStaleMove, dst.coord, dst.piece))
	}
	if p.position != nil {
		p.position.piece = nil
	}
	p.position = dst
	if dst != nil {
		dst.piece = p
	}
}

func (p *Piece) recordMove(m Move) {
	p.hasMoved = true
	p.history = append(p.history, m)
}
