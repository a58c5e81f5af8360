package server

import (
	"encoding/json"
)

// MessageType tags the kinds of websocket messages the driver speaks.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the JSON envelope for every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type errorPayload struct {
	Error string `json:"error"`
}
