package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the game and client ids are present before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID, _ := c.Locals("gameID").(string)
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		// Set by EnsureClientID
		clientID, _ := c.Locals("clientID").(string)
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		// Locals are the only request state that survives the upgrade
		c.Locals("wsGameID", gameID)
		c.Locals("wsClientID", clientID)
		return c.Next()
	}
}
