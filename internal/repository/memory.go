package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// AnalysisMemoryRepository is the process local stand-in for Redis.
type AnalysisMemoryRepository struct {
	mu       sync.RWMutex
	analyses map[entity.Board]entity.Analysis
}

func NewAnalysisMemoryRepository() *AnalysisMemoryRepository {
	return &AnalysisMemoryRepository{analyses: make(map[entity.Board]entity.Analysis)}
}

func (that *AnalysisMemoryRepository) Save(_ context.Context, analysis *entity.Analysis) error {
	stored := storedAnalysis(analysis)
	stored.Moves = append([]entity.MoveValue(nil), analysis.Moves...)

	that.mu.Lock()
	that.analyses[analysis.Board] = *stored
	that.mu.Unlock()

	return nil
}

func (that *AnalysisMemoryRepository) GetByBoard(_ context.Context, board entity.Board) (*entity.Analysis, error) {
	that.mu.RLock()
	analysis, ok := that.analyses[board]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrAnalysisNotFound
	}

	analysis.Moves = append([]entity.MoveValue(nil), analysis.Moves...)
	return &analysis, nil
}

func (that *AnalysisMemoryRepository) DeleteByBoard(_ context.Context, board entity.Board) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.analyses[board]; !ok {
		return ErrAnalysisNotFound
	}

	delete(that.analyses, board)
	return nil
}

// GameMemoryRepository keeps sessions in process memory.
type GameMemoryRepository struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

func NewGameMemoryRepository() *GameMemoryRepository {
	return &GameMemoryRepository{games: make(map[string]entity.Game)}
}

func (that *GameMemoryRepository) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	stored := *game
	stored.History = append([]entity.Move(nil), game.History...)

	that.mu.Lock()
	that.games[game.ID] = stored
	that.mu.Unlock()

	return nil
}

func (that *GameMemoryRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	game, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	game.History = append([]entity.Move(nil), game.History...)
	return &game, nil
}

func (that *GameMemoryRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)
	return nil
}
