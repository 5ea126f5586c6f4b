package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrMalformedBoard = errors.New("board is not reachable by legal play")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrNoActiveGame   = errors.New("no active game")
)
