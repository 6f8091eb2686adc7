package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"
	"github.com/gofiber/fiber/v2"
)

func quiet() log.Interface {
	return &log.Logger{Handler: discard.New(), Level: log.ErrorLevel}
}

func echoPlayer(c *fiber.Ctx) error {
	return c.SendString(c.Locals("playerID").(string))
}

func TestEnsurePlayerID(t *testing.T) {
	app := fiber.New()
	app.Get("/who", EnsurePlayerID(quiet()), echoPlayer)

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"header", "/who", "alice", fiber.StatusOK, "alice"},
		{"query", "/who?playerId=bob", "", fiber.StatusOK, "bob"},
		{"header wins", "/who?playerId=bob", "alice", fiber.StatusOK, "alice"},
		{"missing", "/who", "", fiber.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Player-ID", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody == "" {
				return
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.wantBody {
				t.Fatalf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/game/:gameId", EnsurePlayerID(quiet()), WebSocketUpgrade(quiet(), func(string) bool { return true }), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ws/game/abc", nil)
	req.Header.Set("X-Player-ID", "alice")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

func TestRequestLogger(t *testing.T) {
	h := memory.New()
	app := fiber.New()
	app.Use(RequestLogger(&log.Logger{Handler: h, Level: log.DebugLevel}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	if _, err := app.Test(httptest.NewRequest("GET", "/ping", nil)); err != nil {
		t.Fatal(err)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("got %d log entries", len(h.Entries))
	}
	e := h.Entries[0]
	if e.Fields["path"] != "/ping" || e.Fields["status"] != fiber.StatusOK || e.Fields["duration"] == nil {
		t.Fatalf("fields = %v", e.Fields)
	}
}

func TestPlayerIDOutlivesRequest(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Get("/who", EnsurePlayerID(quiet()), func(c *fiber.Ctx) error {
		seen = append(seen, c.Locals("playerID").(string))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, id := range []string{"alice", "bob", "mallory-with-a-long-id", "eve"} {
		req := httptest.NewRequest("GET", "/who", nil)
		req.Header.Set("X-Player-ID", id)
		if _, err := app.Test(req); err != nil {
			t.Fatal(err)
		}
	}
	if seen[0] != "alice" || seen[1] != "bob" {
		t.Fatalf("kept ids changed after later requests: %q", seen)
	}
}

func TestWebSocketUpgradeChecksGame(t *testing.T) {
	known := map[string]bool{"abc": true}
	app := fiber.New()
	app.Get("/ws/game/:gameId", EnsurePlayerID(quiet()), WebSocketUpgrade(quiet(), func(id string) bool { return known[id] }), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name   string
		target string
		player string
		want   int
	}{
		{"known game", "/ws/game/abc", "alice", fiber.StatusOK},
		{"unknown game", "/ws/game/zzz", "alice", fiber.StatusNotFound},
		{"no player", "/ws/game/abc", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			req.Header.Set("Connection", "Upgrade")
			req.Header.Set("Upgrade", "websocket")
			if tt.player != "" {
				req.Header.Set("X-Player-ID", tt.player)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
