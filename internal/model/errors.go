package model

import "errors"

var (
	ErrOutOfRange       = errors.New("coordinate out of range")
	ErrInvalidCoord     = errors.New("invalid coordinate")
	ErrInvalidPlacement = errors.New("invalid placement")

	// Precondition violations. These are raised with panic and indicate a caller bug.
	ErrMoveExecuted       = errors.New("move already executed")
	ErrMoveNotExecuted    = errors.New("move not executed")
	ErrPieceCaptured      = errors.New("piece has no position")
	ErrSimulationInFlight = errors.New("simulation already in flight")
	ErrStaleMove          = errors.New("move does not match board")
)
