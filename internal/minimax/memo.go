package minimax

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Memo caches exact position values. A stored value never depends on move
// ordering, so hits do not change which moves the search may return.
type Memo struct {
	mu     sync.RWMutex
	values map[entity.Board]entity.GameValue
}

func NewMemo() *Memo {
	return &Memo{values: make(map[entity.Board]entity.GameValue)}
}

func (that *Memo) Get(board entity.Board) (entity.GameValue, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[board]
	return value, ok
}

func (that *Memo) Put(board entity.Board, value entity.GameValue) {
	that.mu.Lock()
	that.values[board] = value
	that.mu.Unlock()
}

func (that *Memo) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.values)
}
