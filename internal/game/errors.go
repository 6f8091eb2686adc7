package game

import "errors"

var (
	ErrGameFull     = errors.New("game is full")
	ErrNotInGame    = errors.New("player not in game")
	ErrNotStarted   = errors.New("game is waiting for an opponent")
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNoPiece      = errors.New("no piece at from square")
	ErrIllegalMove  = errors.New("invalid move, not legal")
	ErrUnauthorized = errors.New("not authorized to join this game")
)
