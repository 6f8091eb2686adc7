package setup

import "errors"

var (
	ErrBadSquare   = errors.New("bad square name")
	ErrBadFEN      = errors.New("bad FEN")
	ErrBadDocument = errors.New("bad placement document")
)
