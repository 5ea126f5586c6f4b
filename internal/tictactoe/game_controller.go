package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// MakeTurn plays move for player in a session and updates its status.
func MakeTurn(gameInstance *entity.Game, player entity.Player, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	board, err := Apply(gameInstance.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board = board
	gameInstance.History = append(gameInstance.History, move)
	updateGameStatus(gameInstance)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game) {
	if winner, ok := Winner(gameInstance.Board); ok {
		gameInstance.Winner = winner.String()
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = 0
		return
	}

	if IsTerminal(gameInstance.Board) {
		gameInstance.Winner = entity.ResultTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = 0
		return
	}

	gameInstance.Status = entity.StatusOngoing
	gameInstance.Turn = CurrentPlayer(gameInstance.Board)
}
