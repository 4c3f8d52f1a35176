package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeRandomMove MessageType = "random"
	MessageTypeReset      MessageType = "reset"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is the payload of a move message, squares in algebraic
// notation.
type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ErrorPayload is the payload of an error message.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
