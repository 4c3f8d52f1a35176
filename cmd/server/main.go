package main

import (
	"log"
	"os"
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/controller"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := fiber.New(fiber.Config{AppName: "chessrules"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	// Initialize services
	gameManager := service.NewGameManager(cfg.Seed)
	gameService := service.NewGameService(gameManager, cfg.MaxPlies, cfg.SelfPlayDelay, cfg.SelfPlayTimeout)

	var origins []string
	if cfg.AllowOrigins != "*" {
		for _, o := range strings.Split(cfg.AllowOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}
	controller.RegisterRoutes(app, gameService, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	})

	log.Printf("HTTP listening on %s (seed %d, max plies %d)", cfg.Addr, cfg.Seed, cfg.MaxPlies)
	log.Fatal(app.Listen(cfg.Addr))
}
