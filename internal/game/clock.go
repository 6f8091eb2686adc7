package game

import (
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Clock accumulates the time one side has spent on its moves. It runs only while that
// side is to move. There is no time control, so it never flags.
type Clock struct {
	mu          sync.Mutex
	used        time.Duration
	lastStarted time.Time
	isRunning   bool
	now         func() time.Time
}

type ClientClock struct {
	UsedMs  int64 `json:"usedMs"`
	Running bool  `json:"running"`
}

type Clocks struct {
	White ClientClock `json:"white"`
	Black ClientClock `json:"black"`
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

// Stop pauses the clock and returns how long it ran since the last Start.
func (c *Clock) Stop() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		return 0
	}
	spent := c.now().Sub(c.lastStarted)
	c.used += spent
	c.isRunning = false
	return spent
}

func (c *Clock) Used() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.used + c.now().Sub(c.lastStarted)
	}
	return c.used
}

func (c *Clock) client() ClientClock {
	used := c.Used()
	c.mu.Lock()
	defer c.mu.Unlock()
	return ClientClock{UsedMs: used.Milliseconds(), Running: c.isRunning}
}

type sideClocks struct {
	White *Clock
	Black *Clock
}

func newSideClocks() sideClocks {
	return sideClocks{White: NewClock(), Black: NewClock()}
}

func (s sideClocks) of(c model.Color) *Clock {
	if c == model.Black {
		return s.Black
	}
	return s.White
}

func (s sideClocks) client() Clocks {
	return Clocks{White: s.White.client(), Black: s.Black.client()}
}
