package service

import (
	"context"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// The connections watching a specific game
type sessionConnections struct {
	connections map[string]Conn // connID -> connection
	mu          sync.RWMutex
	sendMu      sync.Mutex // serializes sends; guards sent
	sent        uint64     // version of the last state broadcast
}

// Session owns one game. Every operation on the game runs under mu, so
// the legality filter's apply/undo cycles never interleave.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	rng         model.Rand
	version     uint64 // bumped under mu on every change
	connections *sessionConnections
}

func newSession(id string, rng model.Rand) *Session {
	return &Session{
		ID:   id,
		game: model.NewGame(),
		rng:  rng,
		connections: &sessionConnections{
			connections: make(map[string]Conn),
		},
	}
}

func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

func (s *Session) Reset() model.Snapshot {
	s.mu.Lock()
	s.game.Reset()
	snap, version := s.changedLocked()
	s.mu.Unlock()

	s.broadcast(snap, version)
	return snap
}

func (s *Session) Move(from, to model.Square) (model.Ply, error) {
	s.mu.Lock()
	ply, err := s.game.Move(from, to)
	if err != nil {
		s.mu.Unlock()
		return ply, err
	}
	snap, version := s.changedLocked()
	s.mu.Unlock()

	s.broadcast(snap, version)
	return ply, nil
}

// RandomMove plays a random legal move for the side to move.
func (s *Session) RandomMove() (model.Ply, error) {
	s.mu.Lock()
	ply, err := s.game.RandomMove(s.game.Turn(), s.rng)
	if err != nil {
		s.mu.Unlock()
		return ply, err
	}
	snap, version := s.changedLocked()
	s.mu.Unlock()

	s.broadcast(snap, version)
	return ply, nil
}

func (s *Session) LegalMoves(from model.Square) ([]model.Square, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMovesFrom(from)
}

// SelfPlay plays random moves for both sides until the game ends, maxPlies
// moves have been made, or ctx is done. The lock is released between plies
// so other clients can watch and query the game.
func (s *Session) SelfPlay(ctx context.Context, maxPlies int, delay time.Duration) ([]model.Ply, error) {
	var plies []model.Ply
	for len(plies) < maxPlies {
		s.mu.Lock()
		over := s.game.IsOver()
		s.mu.Unlock()
		if over {
			break
		}

		ply, err := s.RandomMove()
		if err != nil {
			return plies, err
		}
		plies = append(plies, ply)

		if delay > 0 {
			select {
			case <-ctx.Done():
				return plies, ctx.Err()
			case <-time.After(delay):
			}
		} else if err := ctx.Err(); err != nil {
			return plies, err
		}
	}
	return plies, nil
}

// RegisterConnection sends the current state to conn and adds it to the
// watchers. A connection that cannot take the first state is not added.
func (s *Session) RegisterConnection(connID string, conn Conn) error {
	s.connections.sendMu.Lock()
	defer s.connections.sendMu.Unlock()

	// Holding sendMu keeps any newer state from going out before conn
	// is in the watcher set.
	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.Snapshot())
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		return err
	}

	s.connections.mu.Lock()
	s.connections.connections[connID] = conn
	s.connections.mu.Unlock()
	logger.Printf("game %s: registered connection %s", s.ID, connID)
	return nil
}

func (s *Session) UnregisterConnection(connID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.connections[connID]; exists {
		delete(s.connections.connections, connID)
		logger.Printf("game %s: unregistered connection %s", s.ID, connID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

// changedLocked records a change to the game and returns the state to
// publish. Callers hold s.mu.
func (s *Session) changedLocked() (model.Snapshot, uint64) {
	s.version++
	return s.game.Snapshot(), s.version
}

// broadcast sends the snapshot to every watcher, dropping connections that
// fail to accept it. A snapshot older than one already sent is discarded.
func (s *Session) broadcast(snap model.Snapshot, version uint64) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, snap)
	if err != nil {
		logger.Printf("game %s: marshal state: %v", s.ID, err)
		return
	}

	s.connections.sendMu.Lock()
	defer s.connections.sendMu.Unlock()
	if version <= s.connections.sent {
		return
	}
	s.connections.sent = version

	s.connections.mu.RLock()
	active := make(map[string]Conn, len(s.connections.connections))
	for id, conn := range s.connections.connections {
		active[id] = conn
	}
	s.connections.mu.RUnlock()

	for id, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			logger.Printf("game %s: send state to %s: %v", s.ID, id, err)
			s.UnregisterConnection(id)
		}
	}
}
