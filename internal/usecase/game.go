package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type gameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameUseCase runs human versus engine sessions.
type GameUseCase struct {
	logger *slog.Logger

	gameRepo   gameRepository
	botService botService
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepository, botService botService) *GameUseCase {
	return &GameUseCase{
		logger:     logger.With("component", "game"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

// NewGame starts a session where the human plays humanMark. When the human
// plays O the engine's opening move is already on the board.
func (that *GameUseCase) NewGame(ctx context.Context, humanMark entity.Player) (*entity.Game, error) {
	if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
		return nil, fmt.Errorf("unknown player mark %d", humanMark)
	}

	game := entity.NewGame(pkg.GenerateGameID(), humanMark)

	if game.IsBotTurn() {
		if err := that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to open the game: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("could not save game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "human", humanMark.String())

	return game, nil
}

func (that *GameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrNoActiveGame, gameID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and the engine's reply. Finished games are
// removed from storage and returned with their final state.
func (that *GameUseCase) MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, game.HumanMark, move); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)
		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *GameUseCase) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "game_id", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("could not delete finished game", "error", err)
		return
	}

	log.Info("game finished", "winner", game.Winner)
}
