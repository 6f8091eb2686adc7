package game

import "github.com/benbeisheim/chessrules-backend/internal/model"

// SimpleMove is a from/to pair as clients send and see it.
type SimpleMove struct {
	From model.Coord `json:"from"`
	To   model.Coord `json:"to"`
}

type CastleRookMove struct {
	From model.Coord `json:"from"`
	To   model.Coord `json:"to"`
}

// Ply is the record of one committed move.
type Ply struct {
	Piece          PieceState      `json:"piece"`
	From           model.Coord     `json:"from"`
	To             model.Coord     `json:"to"`
	CapturedPiece  *PieceState     `json:"capturedPiece"`
	CapturedAt     *model.Coord    `json:"capturedAt,omitempty"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Check          bool            `json:"check"`
	SpentMs        int64           `json:"spentMs"`
}

// Move pairs white's ply with black's reply. Either side may be missing when the game
// started with black to move or is waiting on black.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

// makePly records m before it is executed, while the capture is still on the board.
func makePly(m model.Move) Ply {
	p := m.Piece()
	ply := Ply{
		Piece: pieceState(p),
		From:  m.From(),
		To:    m.To(),
	}
	if c := m.Captured(); c != nil {
		cs := pieceState(c)
		ply.CapturedPiece = &cs
		at := c.Coord()
		ply.CapturedAt = &at
	}
	if castle, ok := m.(*model.CastleMove); ok {
		ply.CastleRookMove = &CastleRookMove{From: castle.RookFrom(), To: castle.RookTo()}
	}
	return ply
}

func appendPly(history []Move, c model.Color, ply Ply) []Move {
	if c == model.White || len(history) == 0 || history[len(history)-1].BlackPly != nil {
		history = append(history, Move{})
	}
	last := &history[len(history)-1]
	if c == model.White {
		last.WhitePly = &ply
	} else {
		last.BlackPly = &ply
	}
	return history
}
