// Package minimax solves tic-tac-toe positions by exhaustive game tree search.
//
// X maximizes and O minimizes the GameValue. Candidate moves are visited in
// the order given by an Ordering and the first strictly better value wins,
// so the Ordering is also the tie-break policy among equally good moves.
package minimax

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Below and above every reachable GameValue.
const (
	minusInfinity = int(entity.ValueOWins) - 1
	plusInfinity  = int(entity.ValueXWins) + 1
)

type Engine struct {
	logger   *slog.Logger
	ordering Ordering
	memo     *Memo

	nodes atomic.Int64
	hits  atomic.Int64
}

// Stats are counters accumulated over the lifetime of an Engine.
type Stats struct {
	Nodes    int64 `json:"nodes"`
	MemoHits int64 `json:"memo_hits"`
	MemoSize int   `json:"memo_size"`
}

type Option func(*Engine)

func WithOrdering(ordering Ordering) Option {
	return func(e *Engine) {
		if ordering != nil {
			e.ordering = ordering
		}
	}
}

// WithMemo enables the position value cache.
func WithMemo(enabled bool) Option {
	return func(e *Engine) {
		if enabled {
			e.memo = NewMemo()
		} else {
			e.memo = nil
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Engine with shuffled move ordering and no memo unless the
// options say otherwise.
func New(opts ...Option) *Engine {
	engine := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ordering: NewShuffle(0),
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.logger = engine.logger.With("component", "minimax")

	return engine
}

// BestMove returns the optimal move for the side to move, or false when the
// board is terminal.
func (that *Engine) BestMove(board entity.Board) (entity.Move, bool) {
	move, _, ok := that.Search(board)
	return move, ok
}

// Search returns the optimal move together with the value of the position.
// On a terminal board it returns the utility and false.
func (that *Engine) Search(board entity.Board) (entity.Move, entity.GameValue, bool) {
	before := that.nodes.Load()

	var (
		move  entity.Move
		value entity.GameValue
		ok    bool
	)

	if tictactoe.CurrentPlayer(board) == entity.PlayerX {
		move, value, ok = that.maxSearch(board)
	} else {
		move, value, ok = that.minSearch(board)
	}

	that.logger.Debug("search finished",
		"board", board.Key(),
		"move", move.String(),
		"value", int(value),
		"found", ok,
		"nodes", that.nodes.Load()-before,
	)

	return move, value, ok
}

// Evaluate returns the exact minimax value of board.
func (that *Engine) Evaluate(board entity.Board) entity.GameValue {
	return that.value(board)
}

// Analyze returns the exact value of every legal move in row-major order.
// Terminal boards have no moves.
func (that *Engine) Analyze(board entity.Board) []entity.MoveValue {
	if tictactoe.IsTerminal(board) {
		return nil
	}

	moves := tictactoe.LegalMoves(board)
	values := make([]entity.MoveValue, 0, len(moves))

	for _, move := range moves {
		values = append(values, entity.MoveValue{
			Move:  move,
			Value: that.value(successor(board, move)),
		})
	}

	return values
}

// Pick chooses among already evaluated moves with the same rule Search uses:
// visit in Ordering order, keep the first strictly better value, stop on the
// best possible outcome for the side to move.
func (that *Engine) Pick(board entity.Board, values []entity.MoveValue) (entity.MoveValue, bool) {
	if len(values) == 0 {
		return entity.MoveValue{}, false
	}

	byMove := make(map[entity.Move]entity.GameValue, len(values))
	moves := make([]entity.Move, 0, len(values))
	for _, mv := range values {
		byMove[mv.Move] = mv.Value
		moves = append(moves, mv.Move)
	}

	maximizing := tictactoe.CurrentPlayer(board) == entity.PlayerX

	best := entity.MoveValue{}
	bestValue := plusInfinity
	if maximizing {
		bestValue = minusInfinity
	}

	for _, move := range that.ordering.Order(moves) {
		value := byMove[move]

		if maximizing && value == entity.ValueXWins || !maximizing && value == entity.ValueOWins {
			return entity.MoveValue{Move: move, Value: value}, true
		}

		if maximizing && int(value) > bestValue || !maximizing && int(value) < bestValue {
			bestValue = int(value)
			best = entity.MoveValue{Move: move, Value: value}
		}
	}

	return best, true
}

func (that *Engine) Stats() Stats {
	stats := Stats{
		Nodes:    that.nodes.Load(),
		MemoHits: that.hits.Load(),
	}

	if that.memo != nil {
		stats.MemoSize = that.memo.Len()
	}

	return stats
}

func (that *Engine) maxSearch(board entity.Board) (entity.Move, entity.GameValue, bool) {
	that.nodes.Add(1)

	if tictactoe.IsTerminal(board) {
		return entity.Move{}, tictactoe.Utility(board), false
	}

	var best entity.Move
	bestValue := minusInfinity

	for _, move := range that.ordering.Order(tictactoe.LegalMoves(board)) {
		value := that.value(successor(board, move))
		if value == entity.ValueXWins {
			return move, value, true
		}

		if int(value) > bestValue {
			bestValue = int(value)
			best = move
		}
	}

	return best, entity.GameValue(bestValue), true
}

func (that *Engine) minSearch(board entity.Board) (entity.Move, entity.GameValue, bool) {
	that.nodes.Add(1)

	if tictactoe.IsTerminal(board) {
		return entity.Move{}, tictactoe.Utility(board), false
	}

	var best entity.Move
	bestValue := plusInfinity

	for _, move := range that.ordering.Order(tictactoe.LegalMoves(board)) {
		value := that.value(successor(board, move))
		if value == entity.ValueOWins {
			return move, value, true
		}

		if int(value) < bestValue {
			bestValue = int(value)
			best = move
		}
	}

	return best, entity.GameValue(bestValue), true
}

// value evaluates board for whichever side is to move on it.
func (that *Engine) value(board entity.Board) entity.GameValue {
	if that.memo != nil {
		if value, ok := that.memo.Get(board); ok {
			that.hits.Add(1)
			return value
		}
	}

	var value entity.GameValue
	if tictactoe.CurrentPlayer(board) == entity.PlayerX {
		_, value, _ = that.maxSearch(board)
	} else {
		_, value, _ = that.minSearch(board)
	}

	if that.memo != nil {
		that.memo.Put(board, value)
	}

	return value
}

func successor(board entity.Board, move entity.Move) entity.Board {
	child, err := tictactoe.Apply(board, move)
	if err != nil {
		// moves come from LegalMoves of the same board
		panic(fmt.Errorf("minimax: illegal successor: %w", err))
	}
	return child
}
