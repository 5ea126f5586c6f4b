package minimax

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	OrderingShuffle = "shuffle"
	OrderingFixed   = "fixed"
	OrderingReverse = "reverse"
)

// Ordering decides the order in which candidate moves are visited. Since the
// first best value seen wins, the ordering is the tie-break policy.
type Ordering interface {
	Order(moves []entity.Move) []entity.Move
}

// Shuffle visits moves in a uniformly random order.
type Shuffle struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffle returns a Shuffle seeded with seed, or with the current time
// when seed is 0.
func NewShuffle(seed int64) *Shuffle {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffle{rnd: rand.New(rand.NewSource(seed))} //nolint: gosec // it's ok
}

func (that *Shuffle) Order(moves []entity.Move) []entity.Move {
	ordered := make([]entity.Move, len(moves))
	copy(ordered, moves)

	that.mu.Lock()
	that.rnd.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	that.mu.Unlock()

	return ordered
}

// Fixed keeps the input order.
type Fixed struct{}

func (Fixed) Order(moves []entity.Move) []entity.Move {
	ordered := make([]entity.Move, len(moves))
	copy(ordered, moves)
	return ordered
}

// Reverse visits moves back to front.
type Reverse struct{}

func (Reverse) Order(moves []entity.Move) []entity.Move {
	ordered := make([]entity.Move, len(moves))
	for i, move := range moves {
		ordered[len(moves)-1-i] = move
	}
	return ordered
}

// ParseOrdering maps a configuration name to an Ordering.
func ParseOrdering(name string, seed int64) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", OrderingShuffle:
		return NewShuffle(seed), nil
	case OrderingFixed:
		return Fixed{}, nil
	case OrderingReverse:
		return Reverse{}, nil
	default:
		return nil, fmt.Errorf("unknown move ordering %q", name)
	}
}
