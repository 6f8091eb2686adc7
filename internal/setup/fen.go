package setup

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieces = map[rune]model.PieceType{
	'k': model.King,
	'q': model.Queen,
	'r': model.Rook,
	'b': model.Bishop,
	'n': model.Knight,
	'p': model.Pawn,
}

// castlingCorners maps a FEN castling letter to the rook square it keeps unmoved.
var castlingCorners = map[rune]model.Coord{
	'K': model.Sq(0, 7),
	'Q': model.Sq(0, 0),
	'k': model.Sq(7, 7),
	'q': model.Sq(7, 0),
}

// ParseFEN reads the piece placement, side to move and castling fields of a FEN record.
// The board keeps no move counters, so has-moved flags are inferred: pawns off their start
// row have moved, a king without castling rights has moved, and a rook is unmoved only when
// a castling right names its corner. The en passant field is ignored.
func ParseFEN(fen string) (model.Placement, model.Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, "", fmt.Errorf("%w: empty", ErrBadFEN)
	}

	toMove := model.White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			toMove = model.Black
		default:
			return nil, "", fmt.Errorf("%w: side to move %q", ErrBadFEN, fields[1])
		}
	}

	unmovedRooks := make(map[model.Coord]bool)
	if len(fields) > 2 && fields[2] != "-" {
		for _, r := range fields[2] {
			c, ok := castlingCorners[r]
			if !ok {
				return nil, "", fmt.Errorf("%w: castling %q", ErrBadFEN, fields[2])
			}
			unmovedRooks[c] = true
		}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, "", fmt.Errorf("%w: %d ranks", ErrBadFEN, len(ranks))
	}

	var p model.Placement
	for i, rank := range ranks {
		row := 7 - i
		col := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				col += int(r - '0')
				continue
			}
			t, ok := fenPieces[unicode.ToLower(r)]
			if !ok {
				return nil, "", fmt.Errorf("%w: piece %q", ErrBadFEN, r)
			}
			if col > 7 {
				return nil, "", fmt.Errorf("%w: rank %d overflows", ErrBadFEN, row+1)
			}
			color := model.Black
			if unicode.IsUpper(r) {
				color = model.White
			}
			at := model.Sq(row, col)
			p = append(p, model.PlacedPiece{At: at, Type: t, Color: color, HasMoved: inferMoved(t, color, at, unmovedRooks)})
			col++
		}
		if col != 8 {
			return nil, "", fmt.Errorf("%w: rank %d has %d files", ErrBadFEN, row+1, col)
		}
	}
	return p, toMove, nil
}

func inferMoved(t model.PieceType, c model.Color, at model.Coord, unmovedRooks map[model.Coord]bool) bool {
	home := 0
	if c == model.Black {
		home = 7
	}
	switch t {
	case model.Pawn:
		pawnRow := 1
		if c == model.Black {
			pawnRow = 6
		}
		return at.Row != pawnRow
	case model.Rook:
		return at.Row != home || !unmovedRooks[at]
	case model.King:
		if at != model.Sq(home, 4) {
			return true
		}
		return !unmovedRooks[model.Sq(home, 0)] && !unmovedRooks[model.Sq(home, 7)]
	}
	return false
}
