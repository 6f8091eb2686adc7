package model

import "fmt"

// Simulate executes m speculatively, runs probe against the mutated board and reverses m,
// even when probe panics. Speculative execution records no history and leaves has-moved
// flags alone. Only one simulation may be in flight per board.
func Simulate[T any](b *Board, m Move, probe func(*Board) T) T {
	if m.board() != b {
		panic(fmt.Errorf("%w: %s belongs to another board", ErrStaleMove, m))
	}
	if b.simulating {
		panic(fmt.Errorf("%w: %s", ErrSimulationInFlight, m))
	}
	b.simulating = true
	defer func() { b.simulating = false }()

	m.apply(false)
	defer m.undo()
	return probe(b)
}
