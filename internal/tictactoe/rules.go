package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// winLines is the scan order used by Winner: both diagonals first, then
// row i followed by column i.
var winLines = [][3]int{
	{0, 4, 8},
	{2, 4, 6},
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
}

// CurrentPlayer returns the side to move: X when an even number of cells are
// filled, O otherwise.
func CurrentPlayer(board entity.Board) entity.Player {
	if board.Count(entity.CellEmpty)%2 == 0 {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// LegalMoves returns every empty cell in row-major order. Search code must
// not depend on this order, the ordering policy decides it.
func LegalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, len(board))
	for i, cell := range board {
		if cell == entity.CellEmpty {
			moves = append(moves, entity.MoveFromIndex(i))
		}
	}
	return moves
}

// Apply places the current player's mark under move and returns the new
// board. The input board is left as it was.
func Apply(board entity.Board, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if board.Cell(move) != entity.CellEmpty {
		return board, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	return board.With(move, CurrentPlayer(board).Mark()), nil
}

// Winner returns the owner of the first completed line in scan order.
func Winner(board entity.Board) (entity.Player, bool) {
	for _, line := range winLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.CellEmpty && a == b && b == c {
			return markOwner(a), true
		}
	}
	return 0, false
}

// IsTerminal reports whether the game is over by a win or a full board.
func IsTerminal(board entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}
	return board.Count(entity.CellEmpty) == 0
}

// Utility is the value of a finished game. Non terminal boards without a
// winner score as a draw.
func Utility(board entity.Board) entity.GameValue {
	winner, ok := Winner(board)
	switch {
	case !ok:
		return entity.ValueDraw
	case winner == entity.PlayerX:
		return entity.ValueXWins
	default:
		return entity.ValueOWins
	}
}

// Validate rejects boards that cannot appear in a legally played game.
func Validate(board entity.Board) error {
	xCount, oCount := board.Count(entity.CellX), board.Count(entity.CellO)
	if diff := xCount - oCount; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrMalformedBoard, xCount, oCount)
	}

	xWon, oWon := false, false
	for _, line := range winLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a == entity.CellEmpty || a != b || b != c {
			continue
		}
		if a == entity.CellX {
			xWon = true
		} else {
			oWon = true
		}
	}

	switch {
	case xWon && oWon:
		return fmt.Errorf("%w: both players completed a line", apperror.ErrMalformedBoard)
	case xWon && xCount == oCount:
		return fmt.Errorf("%w: O moved after X already won", apperror.ErrMalformedBoard)
	case oWon && xCount > oCount:
		return fmt.Errorf("%w: X moved after O already won", apperror.ErrMalformedBoard)
	}

	return nil
}

func markOwner(c entity.Cell) entity.Player {
	if c == entity.CellO {
		return entity.PlayerO
	}
	return entity.PlayerX
}
