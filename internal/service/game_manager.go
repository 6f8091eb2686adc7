// service/game_manager.go
package service

import (
	"fmt"
	"sync"

	"github.com/apex/log"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// GameManager is the registry of running games and the matchmaking queue. Each game
// guards its own board, so the manager lock only covers the maps.
type GameManager struct {
	games     map[string]*game.Game
	placement model.Placement
	toMove    model.Color
	log       log.Interface
	queue     *Queue
	matches   map[string]Match
	mu        sync.RWMutex
}

type Option func(*GameManager)

// WithPlacement makes new games start from p with toMove to play instead of the opening
// layout.
func WithPlacement(p model.Placement, toMove model.Color) Option {
	return func(gm *GameManager) {
		gm.placement = p
		gm.toMove = toMove
	}
}

func WithLogger(l log.Interface) Option {
	return func(gm *GameManager) {
		gm.log = l
	}
}

func NewGameManager(opts ...Option) *GameManager {
	gm := &GameManager{
		games:     make(map[string]*game.Game),
		placement: setup.Standard(),
		toMove:    model.White,
		log:       log.Log,
		queue:     NewQueue(),
		matches:   make(map[string]Match),
	}
	for _, opt := range opts {
		opt(gm)
	}
	return gm
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	g, err := game.New(gameID, gm.placement, gm.toMove, gm.log)
	if err != nil {
		return err
	}
	gm.games[gameID] = g
	gm.log.WithField("game", gameID).Info("game created")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*game.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	g, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	return g, nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return g.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (game.GameState, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return game.GameState{}, err
	}
	return g.GetState(), nil
}

func (gm *GameManager) LegalMoves(gameID string, from model.Coord) ([]model.Coord, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return g.LegalMoves(from)
}

func (gm *GameManager) MakeMove(gameID string, playerID string, move game.SimpleMove) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.MakeMove(playerID, move)
}

func (gm *GameManager) Placement(gameID string) (model.Placement, model.Color, error) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return nil, "", err
	}
	p, toMove := g.Placement()
	return p, toMove, nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn game.Conn) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn game.Conn) {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	g.UnregisterConnection(playerID, conn)
}

func (gm *GameManager) SendTo(gameID string, playerID string, msg ws.Message) error {
	g, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return g.SendTo(playerID, msg)
}
