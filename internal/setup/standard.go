// Package setup supplies initial placements for a model.Board.
package setup

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

var backRank = [8]model.PieceType{
	model.Rook, model.Knight, model.Bishop, model.Queen,
	model.King, model.Bishop, model.Knight, model.Rook,
}

// Standard returns the opening layout. White fills rows 0 and 1, black rows 6 and 7.
func Standard() model.Placement {
	p := make(model.Placement, 0, 32)
	for col, t := range backRank {
		p = append(p,
			model.PlacedPiece{At: model.Sq(0, col), Type: t, Color: model.White},
			model.PlacedPiece{At: model.Sq(1, col), Type: model.Pawn, Color: model.White},
			model.PlacedPiece{At: model.Sq(6, col), Type: model.Pawn, Color: model.Black},
			model.PlacedPiece{At: model.Sq(7, col), Type: t, Color: model.Black},
		)
	}
	return p
}

// StandardBoard builds a board in the opening layout.
func StandardBoard() *model.Board {
	b, err := model.NewBoard(Standard())
	if err != nil {
		panic(err)
	}
	return b
}

// ParseSquare reads a square name such as "e4".
func ParseSquare(s string) (model.Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return model.Coord{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return model.Sq(int(s[1]-'1'), int(s[0]-'a')), nil
}
