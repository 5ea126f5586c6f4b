package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionJoinGame = "game:join"
	actionTurn     = "game:turn"
	actionState    = "game:state"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type newGamePayload struct {
	Mark string `json:"mark"`
}

type joinGamePayload struct {
	GameID string `json:"game_id"`
}

type turnPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}
