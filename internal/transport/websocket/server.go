package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	writeWait       = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

var errUnknownAction = errors.New("unknown action")

type gameUseCase interface {
	NewGame(ctx context.Context, humanMark entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error)
}

// session is the state of one connection.
type session struct {
	conn   *websocket.Conn
	gameID string
}

type handlerFunc func(ctx context.Context, sess *session, message *Message) error

type Server struct {
	logger   *slog.Logger
	uGame    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionJoinGame] = server.handleJoinGame
	server.handlers[actionTurn] = server.handleGameTurn

	return server
}

// Handler returns the websocket endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(ctx, &session{conn: conn}); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := sess.conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				log.Warn("failed to unmarshal message", "error", err)
				if err = that.sendError(sess, err); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			if err := that.sendError(sess, fmt.Errorf("%w: %q", errUnknownAction, message.Action)); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, sess, &message); err != nil {
			log.Debug("error processing message", "action", message.Action, "error", err)
			if err = that.sendError(sess, err); err != nil {
				return err
			}
		}
	}
}

func (that *Server) handleNewGame(ctx context.Context, sess *session, message *Message) error {
	payload := newGamePayload{Mark: entity.PlayerX.String()}
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("invalid payload: %w", err)
		}
	}

	mark, err := entity.ParsePlayer(payload.Mark)
	if err != nil {
		return err
	}

	game, err := that.uGame.NewGame(ctx, mark)
	if err != nil {
		return err
	}

	sess.gameID = game.ID

	return that.sendState(sess, game)
}

func (that *Server) handleJoinGame(ctx context.Context, sess *session, message *Message) error {
	var payload joinGamePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return err
	}

	sess.gameID = game.ID

	return that.sendState(sess, game)
}

func (that *Server) handleGameTurn(ctx context.Context, sess *session, message *Message) error {
	if sess.gameID == "" {
		return apperror.ErrNoActiveGame
	}

	var payload turnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	game, err := that.uGame.MakeTurn(ctx, sess.gameID, entity.Move{Row: payload.Row, Col: payload.Col})
	if err != nil {
		return err
	}

	if game.IsFinished() {
		sess.gameID = ""
	}

	return that.sendState(sess, game)
}

func (that *Server) sendState(sess *session, game *entity.Game) error {
	return that.sendMessage(sess, actionState, ResponsePayload{Game: game})
}

func (that *Server) sendError(sess *session, err error) error {
	return that.sendMessage(sess, actionError, ResponsePayload{Error: err.Error()})
}

func (that *Server) sendMessage(sess *session, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = sess.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = sess.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
