package controller

import (
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
)

type GameController struct {
	gameService *service.GameService
	log         log.Interface
}

func NewGameController(gameService *service.GameService, logger log.Interface) *GameController {
	return &GameController{gameService: gameService, log: logger}
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	match, err := gc.gameService.JoinMatchmaking(playerID)
	if err != nil {
		gc.log.WithField("player", playerID).WithError(err).Warn("join matchmaking")
		return errorResponse(c, err)
	}
	return matchResponse(c, match)
}

// MatchmakingStatus lets a queued player poll for the game they were paired into.
func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	match, queued := gc.gameService.MatchmakingStatus(c.Locals("playerID").(string))
	if match == nil && !queued {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not in matchmaking",
		})
	}
	return matchResponse(c, match)
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	if err := gc.gameService.LeaveMatchmaking(c.Locals("playerID").(string)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"status": "left",
	})
}

func matchResponse(c *fiber.Ctx, match *service.Match) error {
	if match == nil {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"gameId": match.GameID,
		"color":  match.Color,
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		gc.log.WithError(err).Error("create game")
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		gc.log.WithFields(log.Fields{"game": gameID, "player": playerID}).WithError(err).Warn("join game")
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// LegalMoves answers GET /:gameId/moves/:square with the destinations of the piece there.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from, err := setup.ParseSquare(c.Params("square"))
	if err != nil {
		return errorResponse(c, err)
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move game.SimpleMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	if err := gc.gameService.HandleMove(gameID, playerID, move); err != nil {
		return errorResponse(c, err)
	}
	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// ExportPlacement returns the current position as a YAML placement document.
func (gc *GameController) ExportPlacement(c *fiber.Ctx) error {
	doc, err := gc.gameService.ExportPlacement(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(doc)
}
