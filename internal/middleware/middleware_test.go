package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakeGames map[string]bool

func (f fakeGames) GameExists(gameID string) bool { return f[gameID] }

func TestEnsureGame(t *testing.T) {
	app := fiber.New()
	app.Get("/game/:gameId", EnsureGame(fakeGames{"g1": true}), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("gameID").(string))
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/game/g1", fiber.StatusOK, "g1"},
		{"/game/g2", fiber.StatusNotFound, `{"error":"game not found"}`},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != tt.status || string(body) != tt.body {
			t.Errorf("GET %s = %d %q; want %d %q", tt.path, resp.StatusCode, body, tt.status, tt.body)
		}
	}
}

func TestEnsureClientID(t *testing.T) {
	app := fiber.New()
	app.Get("/", EnsureClientID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("clientID").(string))
	})

	get := func(req *http.Request) string {
		t.Helper()
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Client-ID", "from-header")
	if got := get(req); got != "from-header" {
		t.Errorf("header id = %q", got)
	}
	if got := get(httptest.NewRequest(http.MethodGet, "/?clientId=from-query", nil)); got != "from-query" {
		t.Errorf("query id = %q", got)
	}
	first := get(httptest.NewRequest(http.MethodGet, "/", nil))
	second := get(httptest.NewRequest(http.MethodGet, "/", nil))
	if first == "" || first == second {
		t.Errorf("generated ids %q and %q; want distinct non-empty ids", first, second)
	}
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:gameId", EnsureClientID(), EnsureGame(fakeGames{"g1": true}), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/g1", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d; want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}
