package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ViewClient is a connected map view
type ViewClient struct {
	SessionID string
	Conn      *websocket.Conn
}

// ViewClaims are the claims carried by a map view session token
type ViewClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
