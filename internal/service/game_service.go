package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinMatchmaking(playerID string) (*Match, error) {
	return gs.gameManager.JoinMatchmaking(playerID, uuid.NewString)
}

func (gs *GameService) MatchmakingStatus(playerID string) (*Match, bool) {
	return gs.gameManager.ClaimMatch(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) error {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) GetGameState(gameID string) (game.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string, from model.Coord) ([]model.Coord, error) {
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move game.SimpleMove) error {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

// ExportPlacement renders the game's current position as a YAML placement document.
func (gs *GameService) ExportPlacement(gameID string) ([]byte, error) {
	p, toMove, err := gs.gameManager.Placement(gameID)
	if err != nil {
		return nil, err
	}
	return setup.Encode(p, toMove)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn game.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn game.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) Send(gameID string, playerID string, msg ws.Message) error {
	return gs.gameManager.SendTo(gameID, playerID, msg)
}
