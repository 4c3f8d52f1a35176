package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type selfPlayRequest struct {
	MaxPlies int `json:"maxPlies"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, state := gc.gameService.CreateGame()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"state":   state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameState, err := gc.gameService.ResetGame(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid move request",
		})
	}

	gameID := c.Params("gameId")
	ply, err := gc.gameService.HandleMove(gameID, req.From, req.To)
	if err != nil {
		return sendError(c, err)
	}
	return gc.replyWithPly(c, gameID, ply)
}

func (gc *GameController) RandomMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	ply, err := gc.gameService.RandomMove(gameID)
	if err != nil {
		return sendError(c, err)
	}
	return gc.replyWithPly(c, gameID, ply)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) SelfPlay(c *fiber.Ctx) error {
	var req selfPlayRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid self-play request",
			})
		}
	}

	gameID := c.Params("gameId")
	plies, err := gc.gameService.SelfPlay(c.UserContext(), gameID, req.MaxPlies)
	if err != nil {
		return sendError(c, err)
	}
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return sendError(c, err)
	}
	if plies == nil {
		plies = []model.Ply{}
	}
	return c.JSON(fiber.Map{
		"plies": plies,
		"state": state,
	})
}

func (gc *GameController) replyWithPly(c *fiber.Ctx, gameID string, ply model.Ply) error {
	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"ply":   ply,
		"state": state,
	})
}

// statusFor maps service and rules errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrInvariant):
		return fiber.StatusInternalServerError
	case errors.Is(err, model.ErrInvalidNotation),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrDeadPiece),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrNoLegalMoves):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		logger.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
