package controller

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
	log         log.Interface
}

func NewWebSocketController(gameService *service.GameService, logger log.Interface) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         logger,
	}
}

// LegalMovesRequest asks for the destinations of the piece on From.
type LegalMovesRequest struct {
	From model.Coord `json:"from"`
}

type LegalMovesReply struct {
	From  model.Coord   `json:"from"`
	Moves []model.Coord `json:"moves"`
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)
	l := wsc.log.WithFields(log.Fields{"game": gameID, "player": playerID})

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		l.WithError(err).Warn("failed to register connection")
		_ = c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			l.WithError(err).Debug("read loop ended")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			l.WithError(err).Debug("parse error")
			wsc.send(l, gameID, playerID, errorMessage(err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, playerID, msg)
		if err != nil {
			l.WithError(err).WithField("type", msg.Type).Debug("handle error")
			reply = errorMessage(err)
		}
		if reply != nil {
			wsc.send(l, gameID, playerID, reply)
		}
	}
}

// handleMessage dispatches one client message and returns the reply for the sender, if
// any. Game state updates reach every client through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move game.SimpleMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		return nil, wsc.gameService.HandleMove(gameID, playerID, move)

	case ws.MessageTypeLegalMoves:
		var req LegalMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		moves, err := wsc.gameService.LegalMoves(gameID, req.From)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeLegalMoves, LegalMovesReply{From: req.From, Moves: moves})
		if err != nil {
			return nil, err
		}
		return &reply, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) send(l log.Interface, gameID, playerID string, msg *ws.Message) {
	if err := wsc.gameService.Send(gameID, playerID, *msg); err != nil {
		l.WithError(err).Warn("failed to send reply")
	}
}

func errorMessage(err error) *ws.Message {
	msg, _ := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	return &msg
}
