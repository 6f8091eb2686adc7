package service

import (
	"fmt"
	"sync"
	"time"
)

type QueuedPlayer struct {
	ID       string
	JoinedAt time.Time
}

// Queue holds players waiting for an opponent, longest waiting first.
type Queue struct {
	players []QueuedPlayer
	now     func() time.Time
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.ID == playerID {
			return fmt.Errorf("%w: %s", ErrAlreadyQueued, playerID)
		}
	}
	q.players = append(q.players, QueuedPlayer{ID: playerID, JoinedAt: q.now()})
	return nil
}

func (q *Queue) RemovePlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.players {
		if p.ID == playerID {
			q.players = append(q.players[:i], q.players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotQueued, playerID)
}

// NextPair removes and returns the two players who have waited longest. ok is false
// when fewer than two are queued.
func (q *Queue) NextPair() (first, second QueuedPlayer, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	first, second = q.players[0], q.players[1]
	q.players = q.players[2:]
	return first, second, true
}

func (q *Queue) Contains(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, p := range q.players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
