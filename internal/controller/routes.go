package controller

import (
	"log"
	"os"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

var logger = log.New(os.Stderr, "[controller] ", log.LstdFlags)

// RegisterRoutes mounts the REST API under /api and the live game stream
// under /ws.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	api := app.Group("/api")
	api.Post("/game", gameController.CreateGame)

	gameRoutes := api.Group("/game/:gameId", middleware.EnsureGame(gameService))
	gameRoutes.Get("/", gameController.GetGameState)
	gameRoutes.Delete("/", gameController.DeleteGame)
	gameRoutes.Post("/reset", gameController.ResetGame)
	gameRoutes.Post("/move", gameController.MakeMove)
	gameRoutes.Post("/random", gameController.RandomMove)
	gameRoutes.Get("/moves/:square", gameController.LegalMoves)
	gameRoutes.Post("/selfplay", gameController.SelfPlay)

	app.Use("/ws", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId",
		middleware.EnsureGame(gameService),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig),
	)
}
