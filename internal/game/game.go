// Package game sequences turns between two players over a model.Board.
package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// The Game struct focuses on a single game's state and its observers. mu guards every
// board mutation; the board itself is not safe for concurrent use.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *model.Board
	toMove      model.Color
	players     Players
	history     []Move
	plies       int
	status      Status
	lastMove    *SimpleMove
	clocks      sideClocks
	connections *GameConnections
	log         log.Interface
}

// New starts a game from placement with toMove to play. The logger may be nil.
func New(id string, placement model.Placement, toMove model.Color, logger log.Interface) (*Game, error) {
	if !toMove.Valid() {
		return nil, fmt.Errorf("%w: side to move %q", model.ErrInvalidPlacement, toMove)
	}
	board, err := model.NewBoard(placement)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Log
	}
	g := &Game{
		ID:          id,
		board:       board,
		toMove:      toMove,
		history:     make([]Move, 0),
		status:      StatusWaiting,
		clocks:      newSideClocks(),
		connections: NewGameConnections(),
		log:         logger.WithField("game", id),
	}
	g.players.White.Color = model.White
	g.players.Black.Color = model.Black
	g.updateStatus()
	return g, nil
}

// AddPlayer seats playerID on the first free side. A player already seated gets their
// side back.
func (g *Game) AddPlayer(playerID string) (model.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.players.colorOf(playerID); ok {
		return c, nil
	}
	for _, c := range []model.Color{model.White, model.Black} {
		seat := g.players.seat(c)
		if seat.ID == "" {
			seat.ID = playerID
			g.log.WithFields(log.Fields{"player": playerID, "color": c}).Info("player joined")
			if g.status == StatusWaiting && g.players.full() {
				g.status = StatusActive
				g.clocks.of(g.toMove).Start()
			}
			return c, nil
		}
	}
	return "", ErrGameFull
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.players.colorOf(playerID)
	return ok
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return !g.players.full()
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// Placement returns the current occupancy and the side to move.
func (g *Game) Placement() (model.Placement, model.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Placement(), g.toMove
}

// LegalMoves returns the squares the piece on from may move to. Any side's piece may be
// asked about.
func (g *Game) LegalMoves(from model.Coord) ([]model.Coord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, err := g.board.Get(from)
	if err != nil {
		return nil, err
	}
	if pos.IsVacant() {
		return nil, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	moves := g.board.LegalMoves(pos.Piece())
	out := make([]model.Coord, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To())
	}
	return out, nil
}

// MakeMove validates and commits playerID's move, then pushes the new state to every
// connected client. The connection lock is taken before the game lock is released, so
// states reach clients in commit order.
func (g *Game) MakeMove(playerID string, move SimpleMove) error {
	g.mu.Lock()
	ply, err := g.makeMove(playerID, move)
	if err != nil {
		g.mu.Unlock()
		g.log.WithFields(log.Fields{"player": playerID, "from": move.From, "to": move.To}).WithError(err).Debug("move rejected")
		return err
	}
	state := g.snapshot()
	g.connections.mu.Lock()
	g.mu.Unlock()
	g.broadcastLocked(state)
	g.connections.mu.Unlock()

	g.log.WithFields(log.Fields{
		"player": playerID,
		"from":   ply.From,
		"to":     ply.To,
		"status": state.Status,
	}).WithDuration(time.Duration(ply.SpentMs) * time.Millisecond).Info("move played")
	return nil
}

func (g *Game) makeMove(playerID string, move SimpleMove) (Ply, error) {
	color, ok := g.players.colorOf(playerID)
	if !ok {
		return Ply{}, ErrNotInGame
	}
	switch {
	case g.status.Over():
		return Ply{}, ErrGameOver
	case g.status == StatusWaiting:
		return Ply{}, ErrNotStarted
	case color != g.toMove:
		return Ply{}, ErrNotYourTurn
	}

	pos, err := g.board.Get(move.From)
	if err != nil {
		return Ply{}, err
	}
	if pos.IsVacant() {
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, move.From)
	}
	if pos.Piece().Color != color {
		return Ply{}, fmt.Errorf("%w: %s belongs to %s", ErrNotYourTurn, move.From, pos.Piece().Color)
	}

	var chosen model.Move
	for _, m := range g.board.LegalMoves(pos.Piece()) {
		if m.To() == move.To {
			chosen = m
			break
		}
	}
	if chosen == nil {
		return Ply{}, fmt.Errorf("%w: %s-%s", ErrIllegalMove, move.From, move.To)
	}

	ply := makePly(chosen)
	chosen.Execute()
	ply.SpentMs = g.clocks.of(color).Stop().Milliseconds()
	g.toMove = g.toMove.Opponent()
	ply.Check = g.board.InCheck(g.toMove)
	g.history = appendPly(g.history, color, ply)
	g.plies++
	g.lastMove = &SimpleMove{From: ply.From, To: ply.To}
	g.updateStatus()
	if !g.status.Over() {
		g.clocks.of(g.toMove).Start()
	}
	return ply, nil
}

// updateStatus settles checkmate or stalemate for the side to move.
func (g *Game) updateStatus() {
	switch {
	case g.board.IsCheckmated(g.toMove):
		g.status = StatusCheckmate
	case g.board.IsStalemated(g.toMove):
		g.status = StatusStalemate
	}
}

func (g *Game) snapshot() GameState {
	s := GameState{
		ID:          g.ID,
		ToMove:      g.toMove,
		MoveHistory: append([]Move(nil), g.history...),
		CapturedPieces: CapturedPieces{
			White: capturedStates(g.board, model.White),
			Black: capturedStates(g.board, model.Black),
		},
		IsCheck:  g.board.InCheck(g.toMove),
		Status:   g.status,
		Players:  g.players,
		LastMove: g.lastMove,
		Plies:    g.plies,
		Clocks:   g.clocks.client(),
	}
	if s.MoveHistory == nil {
		s.MoveHistory = make([]Move, 0)
	}
	if g.status == StatusCheckmate {
		s.Winner = g.toMove.Opponent()
	}
	for c, p := range g.board.Snapshot() {
		ps := pieceState(p)
		s.Board[c.Row][c.Col] = &ps
	}
	return s
}
