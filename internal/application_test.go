package application

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func TestNewEngine(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Fixed ordering", func(t *testing.T) {
		engine, err := NewEngine(logger, config.Search{Ordering: "fixed", Memo: true})
		require.NoError(t, err)

		move, ok := engine.BestMove(entity.Initial())
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Positive(t, engine.Stats().MemoSize)
	})

	t.Run("Unknown ordering", func(t *testing.T) {
		_, err := NewEngine(logger, config.Search{Ordering: "random-walk"})
		require.Error(t, err)
	})
}
