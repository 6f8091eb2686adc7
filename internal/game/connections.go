package game

import (
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// Conn is the part of a websocket connection a game writes to. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game. mu also serialises writes, a websocket
// connection allows only one concurrent writer. Lock order is Game.mu, then mu.
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// RegisterConnection attaches conn for playerID and sends it the current state. Seated
// players may always connect; anyone else only while a seat is free.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	connID := fmt.Sprintf("%p", conn)
	l := g.log.WithFields(log.Fields{"player": playerID, "conn": connID})

	g.mu.Lock()
	_, seated := g.players.colorOf(playerID)
	isAuthorized := seated || !g.players.full()
	if !isAuthorized {
		g.mu.Unlock()
		return ErrUnauthorized
	}
	state := g.snapshot()
	// Held before the game lock is released so no newer broadcast can overtake this state.
	g.connections.mu.Lock()
	g.mu.Unlock()
	defer g.connections.mu.Unlock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the existing connection and turn the new one away.
		l.Debug("rejecting duplicate connection")
		_ = conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		_ = conn.Close()
		return nil
	}

	g.connections.connections[playerID] = conn
	l.Info("registered connection")

	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		delete(g.connections.connections, playerID)
		return err
	}
	return nil
}

// UnregisterConnection drops playerID's connection if conn is still the current one.
func (g *Game) UnregisterConnection(playerID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		g.log.WithField("player", playerID).Info("unregistered connection")
		delete(g.connections.connections, playerID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// SendTo writes msg to playerID's connection, if there is one.
func (g *Game) SendTo(playerID string, msg ws.Message) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, ok := g.connections.connections[playerID]
	if !ok {
		return nil
	}
	return conn.WriteJSON(msg)
}

// broadcastLocked pushes state to every connection, dropping the ones that fail. The
// caller holds g.connections.mu.
func (g *Game) broadcastLocked(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		g.log.WithError(err).Error("failed to marshal state")
		return
	}
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			g.log.WithField("player", playerID).WithError(err).Warn("failed to send state")
			delete(g.connections.connections, playerID)
		}
	}
}
