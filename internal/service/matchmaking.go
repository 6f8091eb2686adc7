package service

import (
	"time"

	"github.com/apex/log"

	"github.com/benbeisheim/chessrules-backend/internal/game"
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Match tells a queued player which game they were paired into.
type Match struct {
	GameID string      `json:"gameId"`
	Color  model.Color `json:"color"`
}

// JoinMatchmaking queues playerID and pairs the two longest waiting players as soon as
// there are two. The player completing a pair gets the match back directly; the one who
// was waiting collects it with ClaimMatch. A nil match means the player is still queued.
func (gm *GameManager) JoinMatchmaking(playerID string, newGameID func() string) (*Match, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if m, ok := gm.matches[playerID]; ok {
		delete(gm.matches, playerID)
		return &m, nil
	}
	if err := gm.queue.AddPlayer(playerID); err != nil {
		return nil, err
	}

	first, second, ok := gm.queue.NextPair()
	if !ok {
		gm.log.WithField("player", playerID).Debug("queued for matchmaking")
		return nil, nil
	}

	gameID := newGameID()
	g, err := game.New(gameID, gm.placement, gm.toMove, gm.log)
	if err != nil {
		return nil, err
	}
	firstColor, err := g.AddPlayer(first.ID)
	if err != nil {
		return nil, err
	}
	secondColor, err := g.AddPlayer(second.ID)
	if err != nil {
		return nil, err
	}
	gm.games[gameID] = g

	matches := map[string]Match{
		first.ID:  {GameID: gameID, Color: firstColor},
		second.ID: {GameID: gameID, Color: secondColor},
	}
	gm.log.WithFields(log.Fields{
		"game":  gameID,
		"white": first.ID,
		"black": second.ID,
	}).WithDuration(time.Since(first.JoinedAt)).Info("match found")

	mine := matches[playerID]
	delete(matches, playerID)
	for id, m := range matches {
		gm.matches[id] = m
	}
	return &mine, nil
}

// ClaimMatch hands a waiting player the game they were paired into, once. queued reports
// whether the player is still waiting when there is no match yet.
func (gm *GameManager) ClaimMatch(playerID string) (m *Match, queued bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if found, ok := gm.matches[playerID]; ok {
		delete(gm.matches, playerID)
		return &found, false
	}
	return nil, gm.queue.Contains(playerID)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) error {
	return gm.queue.RemovePlayer(playerID)
}
