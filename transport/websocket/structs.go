package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

const (
	actionConnect = "connect"
	actionNewGame = "game:new"
	actionMove    = "game:move"
	actionUndo    = "game:undo"
	actionState   = "game:state"
	actionEnd     = "game:end"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NewGamePayload struct {
	Size int `json:"size"`
}

type MovePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ResponsePayload struct {
	Game  *usecase.GameView `json:"game,omitempty"`
	Error string            `json:"error,omitempty"`
}
