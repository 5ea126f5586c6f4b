package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type analysisRepository interface {
	Save(ctx context.Context, analysis *entity.Analysis) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Analysis, error)
}

type searchEngine interface {
	Analyze(board entity.Board) []entity.MoveValue
	Pick(board entity.Board, values []entity.MoveValue) (entity.MoveValue, bool)
}

type SolverUseCase struct {
	logger *slog.Logger

	analysisRepo analysisRepository
	engine       searchEngine
}

func NewSolverUseCase(logger *slog.Logger, analysisRepo analysisRepository, engine searchEngine) *SolverUseCase {
	return &SolverUseCase{
		logger:       logger.With("component", "solver"),
		analysisRepo: analysisRepo,
		engine:       engine,
	}
}

// Solve returns the value of board and the move to play. Move values are
// read from the repository when present, the tie-break runs on every call.
func (that *SolverUseCase) Solve(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	log := that.logger.With("method", "Solve", "board", board.Key())

	if err := tictactoe.Validate(board); err != nil {
		return nil, fmt.Errorf("could not solve board: %w", err)
	}

	if tictactoe.IsTerminal(board) {
		analysis := &entity.Analysis{
			Board:    board,
			Terminal: true,
			Value:    tictactoe.Utility(board),
		}
		if winner, ok := tictactoe.Winner(board); ok {
			analysis.Winner = winner
		}
		return analysis, nil
	}

	analysis, err := that.analysisRepo.GetByBoard(ctx, board)
	switch {
	case err == nil:
		log.Debug("analysis found in storage")
	case errors.Is(err, repository.ErrAnalysisNotFound):
		analysis = nil
	default:
		log.Warn("could not read analysis from storage", "error", err)
		analysis = nil
	}

	fresh := analysis == nil
	if fresh {
		analysis = &entity.Analysis{
			Board: board,
			Turn:  tictactoe.CurrentPlayer(board),
			Moves: that.engine.Analyze(board),
		}
	}

	picked, ok := that.engine.Pick(board, analysis.Moves)
	if !ok {
		return nil, fmt.Errorf("no move found for %s", board.Key())
	}

	analysis.Value = picked.Value
	analysis.Move = &picked.Move

	if fresh {
		if err = that.analysisRepo.Save(ctx, analysis); err != nil {
			log.Warn("could not save analysis", "error", err)
		}
	}

	return analysis, nil
}

// Play applies move to board after checking the board is reachable.
func (that *SolverUseCase) Play(board entity.Board, move entity.Move) (entity.Board, error) {
	if err := tictactoe.Validate(board); err != nil {
		return board, fmt.Errorf("could not play move: %w", err)
	}

	next, err := tictactoe.Apply(board, move)
	if err != nil {
		return board, fmt.Errorf("could not play move: %w", err)
	}

	return next, nil
}

// SelfPlay lets the engine play both sides from the empty board.
func (that *SolverUseCase) SelfPlay(ctx context.Context) (*entity.Playout, error) {
	board := entity.Initial()
	playout := &entity.Playout{}

	for !tictactoe.IsTerminal(board) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("self play interrupted: %w", err)
		}

		analysis, err := that.Solve(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("self play failed: %w", err)
		}

		if board, err = tictactoe.Apply(board, *analysis.Move); err != nil {
			return nil, fmt.Errorf("self play failed: %w", err)
		}
		playout.Moves = append(playout.Moves, *analysis.Move)
	}

	playout.Board = board
	playout.Value = tictactoe.Utility(board)
	if winner, ok := tictactoe.Winner(board); ok {
		playout.Winner = winner
	}

	that.logger.Debug("self play finished", "board", board.Key(), "value", int(playout.Value))

	return playout, nil
}
