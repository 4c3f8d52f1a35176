package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GameLookup reports whether a game id is registered.
type GameLookup interface {
	GameExists(gameID string) bool
}

// EnsureGame rejects requests whose :gameId does not name a running game
// and stores the id in locals as "gameID".
func EnsureGame(games GameLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		if !games.GameExists(gameID) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}

		c.Locals("gameID", gameID)
		return c.Next()
	}
}

// EnsureClientID identifies the caller by the X-Client-ID header or the
// clientId query parameter, minting a fresh id when neither is given.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
