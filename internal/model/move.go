package model

import "fmt"

type MoveKind uint8

const (
	StandardKind MoveKind = iota
	CastleKind
)

func (k MoveKind) String() string {
	switch k {
	case StandardKind:
		return "standard"
	case CastleKind:
		return "castle"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Move is a reversible unit of board mutation. It is pending until executed;
// Execute is only valid on a pending move and Reverse only on an executed one.
// The variants are *StandardMove and *CastleMove.
type Move interface {
	Kind() MoveKind
	// Piece is the mover; the king for a castle.
	Piece() *Piece
	From() Coord
	To() Coord
	// Captured is the piece this move takes (or took, once executed), if any.
	Captured() *Piece
	CanCapture() bool
	Executed() bool
	Execute()
	Reverse()
	IsLegal(ignoreSelfCheck bool) bool
	String() string

	board() *Board
	apply(commit bool)
	undo()
}

// moveState carries the pending/executed bookkeeping shared by both variants.
type moveState struct {
	b         *Board
	executed  bool
	committed bool
}

func (s *moveState) board() *Board  { return s.b }
func (s *moveState) Executed() bool { return s.executed }

func (s *moveState) mustBePending(m Move) {
	if s.executed {
		panic(fmt.Errorf("%w: %s", ErrMoveExecuted, m))
	}
}

func (s *moveState) markExecuted(commit bool) {
	s.executed = true
	s.committed = commit
}

func (s *moveState) end(m Move) (committed bool) {
	if !s.executed {
		panic(fmt.Errorf("%w: %s", ErrMoveNotExecuted, m))
	}
	committed = s.committed
	s.executed = false
	s.committed = false
	return committed
}

func (s *moveState) guardCommit(m Move) {
	if s.b.simulating {
		panic(fmt.Errorf("%w: cannot commit %s", ErrSimulationInFlight, m))
	}
}

// StandardMove relocates one piece and optionally removes a captured piece. The capture
// square differs from the destination only for en passant.
type StandardMove struct {
	moveState
	piece      *Piece
	source     *Position
	dest       *Position
	capturePos *Position
	canCapture bool
	captured   *Piece
}

func newStandardMove(b *Board, p *Piece, dest Coord, canCapture bool) *StandardMove {
	d := b.at(dest)
	return &StandardMove{
		moveState:  moveState{b: b},
		piece:      p,
		source:     b.at(p.Coord()),
		dest:       d,
		capturePos: d,
		canCapture: canCapture,
	}
}

func newEnPassantMove(b *Board, p *Piece, dest, capture Coord) *StandardMove {
	m := newStandardMove(b, p, dest, true)
	m.capturePos = b.at(capture)
	return m
}

func (m *StandardMove) Kind() MoveKind        { return StandardKind }
func (m *StandardMove) Piece() *Piece         { return m.piece }
func (m *StandardMove) From() Coord           { return m.source.coord }
func (m *StandardMove) To() Coord             { return m.dest.coord }
func (m *StandardMove) CapturePos() *Position { return m.capturePos }
func (m *StandardMove) CanCapture() bool      { return m.canCapture }

func (m *StandardMove) Captured() *Piece {
	if m.executed {
		return m.captured
	}
	if m.canCapture && m.piece.isHostile(m.capturePos.piece) {
		return m.capturePos.piece
	}
	return nil
}

func (m *StandardMove) IsEnPassant() bool {
	return m.capturePos != m.dest
}

func (m *StandardMove) IsDoubleAdvance() bool {
	d := m.dest.coord.Row - m.source.coord.Row
	return m.piece.Type == Pawn && (d == 2 || d == -2)
}

func (m *StandardMove) String() string {
	s := fmt.Sprintf("%s %s %s-%s", m.piece.Color, m.piece.Type, m.source.coord, m.dest.coord)
	if c := m.Captured(); c != nil {
		s += fmt.Sprintf(" x%s", c.Type)
		if m.IsEnPassant() {
			s += " e.p."
		}
	}
	return s
}

func (m *StandardMove) Execute() {
	m.guardCommit(m)
	m.apply(true)
}

func (m *StandardMove) Reverse() {
	m.guardCommit(m)
	m.undo()
}

func (m *StandardMove) apply(commit bool) {
	m.mustBePending(m)
	if m.source.piece != m.piece {
		panic(fmt.Errorf("%w: %s is not on %s", ErrStaleMove, m.piece, m.source.coord))
	}
	target := m.capturePos.piece
	if target != nil && (!m.canCapture || !m.piece.isHostile(target)) {
		panic(fmt.Errorf("%w: %s cannot take %s", ErrStaleMove, m, target))
	}
	if m.IsEnPassant() && !m.dest.IsVacant() {
		panic(fmt.Errorf("%w: %s is occupied", ErrStaleMove, m.dest.coord))
	}

	m.captured = target
	if target != nil {
		target.relocate(nil)
	}
	m.piece.relocate(m.dest)
	m.markExecuted(commit)

	if commit {
		m.piece.recordMove(m)
		m.b.pushHistory(m)
	}
}

func (m *StandardMove) undo() {
	committed := m.end(m)
	m.piece.relocate(m.source)
	if m.captured != nil {
		m.captured.relocate(m.capturePos)
	}
	if committed {
		m.b.popHistory(m)
	}
}

// IsLegal applies the occupancy rules and, unless ignoreSelfCheck is set, rejects the
// move when simulating it leaves the mover's king attacked.
func (m *StandardMove) IsLegal(ignoreSelfCheck bool) bool {
	if m.source.piece != m.piece {
		return false
	}
	if m.dest.IsFriendly(m.piece.Color) {
		return false
	}
	if !m.canCapture && !m.dest.IsVacant() {
		return false
	}
	if m.IsEnPassant() && (!m.dest.IsVacant() || !m.capturePos.IsHostile(m.piece.Color)) {
		return false
	}
	if ignoreSelfCheck {
		return true
	}
	return Simulate(m.b, m, func(b *Board) bool {
		return !b.KingInCheck(m.piece.king)
	})
}

type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

var castleSides = []CastleSide{KingSide, QueenSide}

func (s CastleSide) String() string {
	if s == QueenSide {
		return "queen-side"
	}
	return "king-side"
}

// direction is the column step from king towards the rook.
func (s CastleSide) direction() int {
	if s == QueenSide {
		return -1
	}
	return 1
}

// rookDistance is how many columns the castling rook stands from the unmoved king.
func (s CastleSide) rookDistance() int {
	if s == QueenSide {
		return 4
	}
	return 3
}

// CastleMove relocates king and rook together. It never captures.
type CastleMove struct {
	moveState
	king     *Piece
	rook     *Piece
	side     CastleSide
	kingFrom Coord
	kingTo   Coord
	rookFrom Coord
	rookTo   Coord
}

func newCastleMove(b *Board, king, rook *Piece, side CastleSide) *CastleMove {
	from := king.Coord()
	return &CastleMove{
		moveState: moveState{b: b},
		king:      king,
		rook:      rook,
		side:      side,
		kingFrom:  from,
		kingTo:    Coord{Row: from.Row, Col: from.Col + 2*side.direction()},
		rookFrom:  rook.Coord(),
		rookTo:    Coord{Row: from.Row, Col: from.Col + side.direction()},
	}
}

func (m *CastleMove) Kind() MoveKind   { return CastleKind }
func (m *CastleMove) Piece() *Piece    { return m.king }
func (m *CastleMove) Rook() *Piece     { return m.rook }
func (m *CastleMove) Side() CastleSide { return m.side }
func (m *CastleMove) From() Coord      { return m.kingFrom }
func (m *CastleMove) To() Coord        { return m.kingTo }
func (m *CastleMove) RookFrom() Coord  { return m.rookFrom }
func (m *CastleMove) RookTo() Coord    { return m.rookTo }
func (m *CastleMove) Captured() *Piece { return nil }
func (m *CastleMove) CanCapture() bool { return false }

func (m *CastleMove) String() string {
	return fmt.Sprintf("%s king castles %s", m.king.Color, m.side)
}

func (m *CastleMove) Execute() {
	m.guardCommit(m)
	m.apply(true)
}

func (m *CastleMove) Reverse() {
	m.guardCommit(m)
	m.undo()
}

func (m *CastleMove) inPlace() bool {
	return m.b.PieceAt(m.kingFrom) == m.king && m.b.PieceAt(m.rookFrom) == m.rook
}

func (m *CastleMove) apply(commit bool) {
	m.mustBePending(m)
	if !m.inPlace() || !m.b.at(m.kingTo).IsVacant() || !m.b.at(m.rookTo).IsVacant() {
		panic(fmt.Errorf("%w: %s", ErrStaleMove, m))
	}
	m.rook.relocate(m.b.at(m.rookTo))
	m.king.relocate(m.b.at(m.kingTo))
	m.markExecuted(commit)

	if commit {
		m.king.recordMove(m)
		m.rook.recordMove(m)
		m.b.pushHistory(m)
	}
}

func (m *CastleMove) undo() {
	committed := m.end(m)
	m.king.relocate(m.b.at(m.kingFrom))
	m.rook.relocate(m.b.at(m.rookFrom))
	if committed {
		m.b.popHistory(m)
	}
}

func (m *CastleMove) IsLegal(ignoreSelfCheck bool) bool {
	if !m.inPlace() {
		return false
	}
	if !m.b.at(m.kingTo).IsVacant() || !m.b.at(m.rookTo).IsVacant() {
		return false
	}
	if ignoreSelfCheck {
		return true
	}
	return Simulate(m.b, m, func(b *Board) bool {
		return !b.KingInCheck(m.king)
	})
}
