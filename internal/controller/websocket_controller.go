package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serializes writes from the read loop and from game broadcasts.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (lc *lockedConn) WriteJSON(v interface{}) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	clientID, _ := c.Locals("wsClientID").(string)
	// A client may watch the same game from several sockets
	connID := clientID + "/" + uuid.NewString()
	conn := &lockedConn{conn: c}

	// Registering sends the current state to the new watcher
	if err := wsc.gameService.RegisterConnection(gameID, connID, conn); err != nil {
		logger.Printf("register connection %s on game %s: %v", connID, gameID, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("read error on %s: %v", connID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.sendError(conn, err)
		}
	}
}

// Successful commands reach the client through the game's state broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, move.From, move.To)
		return err

	case ws.MessageTypeRandomMove:
		_, err := wsc.gameService.RandomMove(gameID)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn service.Conn, err error) {
	msg, mErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if mErr != nil {
		logger.Printf("marshal error message: %v", mErr)
		return
	}
	if wErr := conn.WriteJSON(msg); wErr != nil {
		logger.Printf("send error message: %v", wErr)
	}
}
