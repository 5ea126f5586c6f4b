package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type moveSearcher interface {
	BestMove(board entity.Board) (entity.Move, bool)
}

// BotService plays the engine's side of a session.
type BotService struct {
	engine moveSearcher
}

func NewBotService(engine moveSearcher) *BotService {
	return &BotService{engine: engine}
}

func (that *BotService) MakeTurn(game *entity.Game) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	move, ok := that.engine.BestMove(game.Board)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, game.BotMark, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
