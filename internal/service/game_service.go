package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

type GameService struct {
	gameManager     *GameManager
	maxPlies        int
	selfPlayDelay   time.Duration
	selfPlayTimeout time.Duration
}

// NewGameService bounds every self-play run by maxPlies and by
// selfPlayTimeout of wall time; a zero timeout means no time limit.
func NewGameService(gameManager *GameManager, maxPlies int, selfPlayDelay, selfPlayTimeout time.Duration) *GameService {
	return &GameService{
		gameManager:     gameManager,
		maxPlies:        maxPlies,
		selfPlayDelay:   selfPlayDelay,
		selfPlayTimeout: selfPlayTimeout,
	}
}

func (gs *GameService) CreateGame() (string, model.Snapshot) {
	session := gs.gameManager.CreateGame()
	return session.ID, session.Snapshot()
}

func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (gs *GameService) ResetGame(gameID string) (model.Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.Reset(), nil
}

// HandleMove plays a move given in algebraic notation, e.g. "e2" to "e4".
func (gs *GameService) HandleMove(gameID, from, to string) (model.Ply, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	fromSq, err := model.ParseSquare(from)
	if err != nil {
		return model.Ply{}, fmt.Errorf("from: %w", err)
	}
	toSq, err := model.ParseSquare(to)
	if err != nil {
		return model.Ply{}, fmt.Errorf("to: %w", err)
	}
	return session.Move(fromSq, toSq)
}

func (gs *GameService) RandomMove(gameID string) (model.Ply, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	return session.RandomMove()
}

// LegalMoves lists the legal destinations of the piece on square.
func (gs *GameService) LegalMoves(gameID, square string) ([]string, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	sq, err := model.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	moves, err := session.LegalMoves(sq)
	if err != nil {
		return nil, err
	}
	return model.Notations(moves), nil
}

// SelfPlay runs random play on the game. maxPlies <= 0 uses the configured
// limit; larger requests are capped to it. Hitting the time limit ends the
// run without an error.
func (gs *GameService) SelfPlay(ctx context.Context, gameID string, maxPlies int) ([]model.Ply, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if maxPlies <= 0 || maxPlies > gs.maxPlies {
		maxPlies = gs.maxPlies
	}
	runCtx := ctx
	if gs.selfPlayTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, gs.selfPlayTimeout)
		defer cancel()
	}

	plies, err := session.SelfPlay(runCtx, maxPlies, gs.selfPlayDelay)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// Out of time is a normal end of the run.
		logger.Printf("game %s: self-play stopped after %s", gameID, gs.selfPlayTimeout)
		err = nil
	}
	logger.Printf("game %s: self-play made %d plies", gameID, len(plies))
	return plies, err
}

func (gs *GameService) RegisterConnection(gameID, connID string, conn Conn) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(connID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(connID)
}
