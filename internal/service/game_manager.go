package service

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"sync"

	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

var logger = log.New(os.Stderr, "[service] ", log.LstdFlags)

// GameManager is the registry of running games.
type GameManager struct {
	games map[string]*Session
	seeds *rand.Rand
	mu    sync.RWMutex
}

// NewGameManager seeds every game's random source from seed, so a fixed
// seed replays the same random moves. Zero picks a seed from the clock.
func NewGameManager(seed int64) *GameManager {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &GameManager{
		games: make(map[string]*Session),
		seeds: rand.New(rand.NewSource(seed)),
	}
}

func (gm *GameManager) CreateGame() *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	session := newSession(gameID, rand.New(rand.NewSource(gm.seeds.Int63())))
	gm.games[gameID] = session
	logger.Printf("created game %s", gameID)
	return session
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	logger.Printf("removed game %s", gameID)
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
