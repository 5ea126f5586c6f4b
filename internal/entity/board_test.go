package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	// When: create the starting board
	board := Initial()

	// Then: all nine cells are empty
	assert.Equal(t, 9, board.Count(CellEmpty))
	assert.Equal(t, "...|...|...", board.Key())
}

func TestBoard_With(t *testing.T) {
	// Given: an empty board
	board := Initial()

	// When: a mark is placed in the centre
	next := board.With(Move{Row: 1, Col: 1}, CellX)

	// Then: the new board holds the mark and the original is untouched
	assert.Equal(t, CellX, next.Cell(Move{Row: 1, Col: 1}))
	assert.Equal(t, Initial(), board)
}

func TestMove_Index(t *testing.T) {
	for i := 0; i < 9; i++ {
		move := MoveFromIndex(i)
		assert.True(t, move.InBounds())
		assert.Equal(t, i, move.Index())
	}

	assert.False(t, Move{Row: 3, Col: 0}.InBounds())
	assert.False(t, Move{Row: 0, Col: -1}.InBounds())
}

func TestParseBoard(t *testing.T) {
	t.Run("Compact form", func(t *testing.T) {
		// When: parsing the storage key form
		board, err := ParseBoard("XO.|.X.|..O")

		// Then: the cells are read row-major
		require.NoError(t, err)
		assert.Equal(t, Board{CellX, CellO, CellEmpty, CellEmpty, CellX, CellEmpty, CellEmpty, CellEmpty, CellO}, board)
		assert.Equal(t, "XO.|.X.|..O", board.String())
	})

	t.Run("Lower case and dashes", func(t *testing.T) {
		board, err := ParseBoard("x-o/---/o-x")

		require.NoError(t, err)
		assert.Equal(t, "X.O|...|O.X", board.Key())
	})

	t.Run("Too few cells", func(t *testing.T) {
		_, err := ParseBoard("XO")
		require.Error(t, err)
	})

	t.Run("Too many cells", func(t *testing.T) {
		_, err := ParseBoard("XO.......X")
		require.Error(t, err)
	})

	t.Run("Unknown character", func(t *testing.T) {
		_, err := ParseBoard("XO.Z.....")
		require.Error(t, err)
	})
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		// Given: a board with both marks
		board, err := ParseBoard("X.O......")
		require.NoError(t, err)

		// When: encoding it
		data, err := json.Marshal(board)

		// Then: cells are encoded as strings with "" for empty
		require.NoError(t, err)
		assert.JSONEq(t, `["X","","O","","","","","",""]`, string(data))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`["x","","O","","","","","",""]`), &board)

		require.NoError(t, err)
		assert.Equal(t, "X.O|...|...", board.Key())
	})

	t.Run("Unmarshal wrong length", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`["X"]`), &board)
		require.Error(t, err)
	})

	t.Run("Unmarshal unknown mark", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`["Z","","","","","","","",""]`), &board)
		require.Error(t, err)
	})
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, CellX, PlayerX.Mark())
	assert.Equal(t, CellO, PlayerO.Mark())

	player, err := ParsePlayer("o")
	require.NoError(t, err)
	assert.Equal(t, PlayerO, player)

	_, err = ParsePlayer("Z")
	require.Error(t, err)
}

func TestBoard_Grid(t *testing.T) {
	board, err := ParseBoard("X.O|...|..X")
	require.NoError(t, err)

	expected := " X |   | O \n---+---+---\n   |   |   \n---+---+---\n   |   | X "
	assert.Equal(t, expected, board.Grid())
}
