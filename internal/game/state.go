package game

import "github.com/benbeisheim/chessrules-backend/internal/model"

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusActive    Status = "active"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

func (s Status) Over() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

type PieceState struct {
	Type     model.PieceType `json:"type"`
	Color    model.Color     `json:"color"`
	Position *model.Coord    `json:"position"`
	HasMoved bool            `json:"hasMoved"`
}

func pieceState(p *model.Piece) PieceState {
	s := PieceState{Type: p.Type, Color: p.Color, HasMoved: p.HasMoved()}
	if !p.IsCaptured() {
		c := p.Coord()
		s.Position = &c
	}
	return s
}

// CapturedPieces lists, per colour, that side's pieces taken off the board.
type CapturedPieces struct {
	White []PieceState `json:"white"`
	Black []PieceState `json:"black"`
}

// GameState is the snapshot sent to clients. Board is indexed [row][col], row 0 being
// white's back rank.
type GameState struct {
	ID             string            `json:"id"`
	Board          [8][8]*PieceState `json:"board"`
	ToMove         model.Color       `json:"toMove"`
	MoveHistory    []Move            `json:"moveHistory"`
	CapturedPieces CapturedPieces    `json:"capturedPieces"`
	IsCheck        bool              `json:"isCheck"`
	Status         Status            `json:"status"`
	Winner         model.Color       `json:"winner,omitempty"`
	Players        Players           `json:"players"`
	LastMove       *SimpleMove       `json:"lastMove"`
	Plies          int               `json:"plies"`
	Clocks         Clocks            `json:"clocks"`
}

func capturedStates(b *model.Board, c model.Color) []PieceState {
	out := make([]PieceState, 0)
	for _, p := range b.Captured(c) {
		out = append(out, pieceState(p))
	}
	return out
}
