package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := minimax.New(minimax.WithOrdering(minimax.Fixed{}), minimax.WithMemo(true))
	games := usecase.NewGameUseCase(logger, repository.NewGameMemoryRepository(), service.NewBotService(engine))

	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(New(logger, games).Handler(ctx))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	message := Message{Action: action}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		message.Payload = data
	}

	require.NoError(t, conn.WriteJSON(message))
}

func receive(t *testing.T, conn *websocket.Conn) (string, ResponsePayload) {
	t.Helper()

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message.Action, payload
}

func TestServer_PlayGame(t *testing.T) {
	conn := dial(t)

	// Given: a new game where the human plays X
	send(t, conn, actionNewGame, newGamePayload{Mark: "X"})
	action, payload := receive(t, conn)
	require.Equal(t, actionState, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, entity.Initial(), payload.Game.Board)

	// When: the human plays the first free cell until the game ends
	game := payload.Game
	for !game.IsFinished() {
		var move entity.Move
		for i, cell := range game.Board {
			if cell == entity.CellEmpty {
				move = entity.MoveFromIndex(i)
				break
			}
		}

		send(t, conn, actionTurn, turnPayload{Row: move.Row, Col: move.Col})
		action, payload = receive(t, conn)
		require.Equal(t, actionState, action, payload.Error)
		game = payload.Game
	}

	// Then: the engine did not lose
	assert.NotEqual(t, entity.PlayerX.String(), game.Winner)

	// Then: further turns are rejected
	send(t, conn, actionTurn, turnPayload{Row: 0, Col: 0})
	action, payload = receive(t, conn)
	assert.Equal(t, actionError, action)
	assert.NotEmpty(t, payload.Error)
}

func TestServer_EngineOpensForO(t *testing.T) {
	conn := dial(t)

	send(t, conn, actionNewGame, newGamePayload{Mark: "O"})
	action, payload := receive(t, conn)

	require.Equal(t, actionState, action)
	assert.Equal(t, 1, payload.Game.Board.Count(entity.CellX))
	assert.Equal(t, entity.PlayerO, payload.Game.Turn)
}

func TestServer_JoinGame(t *testing.T) {
	conn := dial(t)

	send(t, conn, actionNewGame, nil)
	_, created := receive(t, conn)
	require.NotNil(t, created.Game)

	// When: joining the same game by id
	send(t, conn, actionJoinGame, joinGamePayload{GameID: created.Game.ID})
	action, joined := receive(t, conn)

	// Then: the stored state is returned
	require.Equal(t, actionState, action)
	assert.Equal(t, created.Game.ID, joined.Game.ID)

	send(t, conn, actionJoinGame, joinGamePayload{GameID: "missing"})
	action, payload := receive(t, conn)
	assert.Equal(t, actionError, action)
	assert.Contains(t, payload.Error, "no active game")
}

func TestServer_Errors(t *testing.T) {
	conn := dial(t)

	t.Run("Turn without a game", func(t *testing.T) {
		send(t, conn, actionTurn, turnPayload{Row: 1, Col: 1})
		action, payload := receive(t, conn)

		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, "no active game")
	})

	t.Run("Unknown action", func(t *testing.T) {
		send(t, conn, "game:resign", nil)
		action, payload := receive(t, conn)

		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, "unknown action")
	})

	t.Run("Invalid mark", func(t *testing.T) {
		send(t, conn, actionNewGame, newGamePayload{Mark: "Z"})
		action, _ := receive(t, conn)

		assert.Equal(t, actionError, action)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		send(t, conn, actionNewGame, newGamePayload{Mark: "O"})
		_, payload := receive(t, conn)
		require.Len(t, payload.Game.History, 1)
		opening := payload.Game.History[0]

		send(t, conn, actionTurn, turnPayload{Row: opening.Row, Col: opening.Col})
		action, payload := receive(t, conn)

		assert.Equal(t, actionError, action)
		assert.Contains(t, payload.Error, "occupied")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
		action, _ := receive(t, conn)

		assert.Equal(t, actionError, action)
	})
}
