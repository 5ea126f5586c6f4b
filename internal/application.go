package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-solver/internal/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type analysisRepository interface {
	Save(ctx context.Context, analysis *entity.Analysis) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

type gameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// NewEngine builds the search engine described by conf.
func NewEngine(logger *slog.Logger, conf config.Search) (*minimax.Engine, error) {
	ordering, err := minimax.ParseOrdering(conf.Ordering, conf.Seed)
	if err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}

	return minimax.New(
		minimax.WithOrdering(ordering),
		minimax.WithMemo(conf.Memo),
		minimax.WithLogger(logger),
	), nil
}

// RunApp - runs the HTTP and WebSocket servers until ctx is canceled.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine, err := NewEngine(logger, conf.Search)
	if err != nil {
		return err
	}

	var (
		analysisRepo analysisRepository = repository.NewAnalysisMemoryRepository()
		gameRepo     gameRepository     = repository.NewGameMemoryRepository()
	)

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		analysisRepo = repository.NewAnalysisRepository(redisStorage.Connection, conf.Redis.TTL)
		gameRepo = repository.NewGameRepository(redisStorage.Connection, conf.Redis.TTL)
		log.Info("Using redis storage", "addr", redisAddrString)
	} else {
		log.Info("Redis disabled, using in-memory storage")
	}

	solverUseCase := usecase.NewSolverUseCase(logger, analysisRepo, engine)
	gameUseCase := usecase.NewGameUseCase(logger, gameRepo, service.NewBotService(engine))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.New(logger, solverUseCase).Start(ctx, conf.HTTPPort)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	return nil
}
