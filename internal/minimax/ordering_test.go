package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

func TestOrdering(t *testing.T) {
	moves := tictactoe.LegalMoves(entity.Initial())
	snapshot := append([]entity.Move(nil), moves...)

	t.Run("Fixed keeps order", func(t *testing.T) {
		assert.Equal(t, moves, Fixed{}.Order(moves))
	})

	t.Run("Reverse", func(t *testing.T) {
		ordered := Reverse{}.Order(moves)

		assert.Equal(t, entity.Move{Row: 2, Col: 2}, ordered[0])
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, ordered[len(ordered)-1])
	})

	t.Run("Shuffle is a permutation", func(t *testing.T) {
		ordered := NewShuffle(3).Order(moves)

		assert.ElementsMatch(t, moves, ordered)
	})

	t.Run("Same seed same order", func(t *testing.T) {
		assert.Equal(t, NewShuffle(11).Order(moves), NewShuffle(11).Order(moves))
	})

	// Then: no ordering touches its input
	assert.Equal(t, snapshot, moves)
}

func TestParseOrdering(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		ordering, err := ParseOrdering("", 0)
		require.NoError(t, err)
		assert.IsType(t, &Shuffle{}, ordering)

		ordering, err = ParseOrdering("Fixed", 0)
		require.NoError(t, err)
		assert.IsType(t, Fixed{}, ordering)

		ordering, err = ParseOrdering("reverse", 0)
		require.NoError(t, err)
		assert.IsType(t, Reverse{}, ordering)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseOrdering("alphabetical", 0)
		require.Error(t, err)
	})
}
