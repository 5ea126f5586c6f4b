package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

type gameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

func testGameRepository(ctx context.Context, t *testing.T, gameRepo gameRepository) {
	t.Helper()

	t.Run("CreateOrUpdate and GetByID", func(t *testing.T) {
		// Given: a game with one move played
		game := entity.NewGame("123", entity.PlayerX)
		game.Board = game.Board.With(entity.Move{Row: 1, Col: 1}, entity.CellX)
		game.Turn = entity.PlayerO
		game.History = []entity.Move{{Row: 1, Col: 1}}

		// When: CreateOrUpdate is called
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// Then: the retrieved game matches the saved game
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		// When: GetByID is called with non-existent ID
		_, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		game := entity.NewGame("456", entity.PlayerO)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))

		// Then: the game is gone and a second delete fails
		_, err := gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)
		require.ErrorIs(t, gameRepo.DeleteByID(ctx, game.ID), ErrGameNotFound)
	})
}

func TestGameRedisRepository(t *testing.T) {
	ctx, st := suite.New(t)

	testGameRepository(ctx, t, NewGameRepository(st.Storage, time.Minute))
}

func TestGameMemoryRepository(t *testing.T) {
	testGameRepository(context.Background(), t, NewGameMemoryRepository())
}
