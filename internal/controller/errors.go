package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrNotQueued):
		return fiber.StatusNotFound
	case errors.Is(err, game.ErrNotInGame),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, game.ErrGameFull),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNotStarted),
		errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrAlreadyQueued):
		return fiber.StatusConflict
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrNoPiece),
		errors.Is(err, model.ErrOutOfRange),
		errors.Is(err, setup.ErrBadSquare):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
