package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type mockAnalysisRepo struct {
	mock.Mock
}

func (that *mockAnalysisRepo) Save(ctx context.Context, analysis *entity.Analysis) error {
	args := that.Called(ctx, analysis)
	return args.Error(0)
}

func (that *mockAnalysisRepo) GetByBoard(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	args := that.Called(ctx, board)
	analysis, _ := args.Get(0).(*entity.Analysis)
	return analysis, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}
