package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type solver interface {
	Solve(ctx context.Context, board entity.Board) (*entity.Analysis, error)
	Play(board entity.Board, move entity.Move) (entity.Board, error)
	SelfPlay(ctx context.Context) (*entity.Playout, error)
}

type Server struct {
	logger *slog.Logger
	solver solver
}

func New(logger *slog.Logger, solver solver) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		solver: solver,
	}
}

// Handler returns the routes served by the API.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", that.handleSolve)
		r.Post("/move", that.handleMove)
		r.Get("/selfplay", that.handleSelfPlay)
	})

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
