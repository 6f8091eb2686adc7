package game

import (
	"testing"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockAccumulates(t *testing.T) {
	ft := &fakeTime{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewClock()
	c.now = ft.now

	if c.Stop() != 0 {
		t.Fatal("stopping an idle clock should report nothing")
	}
	c.Start()
	ft.advance(3 * time.Second)
	if got := c.Used(); got != 3*time.Second {
		t.Fatalf("running used = %v", got)
	}
	c.Start()
	ft.advance(time.Second)
	if spent := c.Stop(); spent != 4*time.Second {
		t.Fatalf("spent = %v", spent)
	}
	ft.advance(time.Minute)
	c.Start()
	ft.advance(500 * time.Millisecond)
	c.Stop()
	if got := c.client(); got.UsedMs != 4500 || got.Running {
		t.Fatalf("client clock = %+v", got)
	}
}

func TestGameRunsClockOfSideToMove(t *testing.T) {
	ft := &fakeTime{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := newGame(t, setup.Standard(), model.White)
	g.clocks.White.now = ft.now
	g.clocks.Black.now = ft.now

	ft.advance(time.Hour)
	for _, id := range []string{"w", "b"} {
		if _, err := g.AddPlayer(id); err != nil {
			t.Fatal(err)
		}
	}
	if s := g.GetState(); !s.Clocks.White.Running || s.Clocks.White.UsedMs != 0 {
		t.Fatalf("white clock before first move = %+v", s.Clocks.White)
	}

	ft.advance(2 * time.Second)
	play(t, g, turn{"w", mv(1, 4, 3, 4)})
	ft.advance(5 * time.Second)
	play(t, g, turn{"b", mv(6, 4, 4, 4)})

	s := g.GetState()
	if s.Clocks.White.UsedMs != 2000 || !s.Clocks.White.Running {
		t.Fatalf("white clock = %+v", s.Clocks.White)
	}
	if s.Clocks.Black.UsedMs != 5000 || s.Clocks.Black.Running {
		t.Fatalf("black clock = %+v", s.Clocks.Black)
	}
	if s.MoveHistory[0].WhitePly.SpentMs != 2000 || s.MoveHistory[0].BlackPly.SpentMs != 5000 {
		t.Fatalf("ply times = %d, %d", s.MoveHistory[0].WhitePly.SpentMs, s.MoveHistory[0].BlackPly.SpentMs)
	}
}

func TestClocksStopAtGameOver(t *testing.T) {
	g := startedGame(t, setup.Standard(), model.White)
	play(t, g,
		turn{"w", mv(1, 5, 2, 5)},
		turn{"b", mv(6, 4, 4, 4)},
		turn{"w", mv(1, 6, 3, 6)},
		turn{"b", mv(7, 3, 3, 7)},
	)
	s := g.GetState()
	if s.Status != StatusCheckmate {
		t.Fatalf("status = %s", s.Status)
	}
	if s.Clocks.White.Running || s.Clocks.Black.Running {
		t.Fatalf("clocks still running after mate: %+v", s.Clocks)
	}
}
