package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

const analysisKeyPrefix = "analysis:"

// AnalysisRedisRepository keeps solved positions in Redis. Stored move values
// are exact, the move to play is chosen again on every read.
type AnalysisRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisRepository(client *redis.Client, ttl time.Duration) *AnalysisRedisRepository {
	return &AnalysisRedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (that *AnalysisRedisRepository) Save(ctx context.Context, analysis *entity.Analysis) error {
	analysisJSON, err := json.Marshal(storedAnalysis(analysis))
	if err != nil {
		return fmt.Errorf("could not marshal analysis: %w", err)
	}

	if err = that.client.Set(ctx, analysisKeyPrefix+analysis.Board.Key(), analysisJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis: %w", err)
	}

	return nil
}

func (that *AnalysisRedisRepository) GetByBoard(ctx context.Context, board entity.Board) (*entity.Analysis, error) {
	response, err := that.client.Get(ctx, analysisKeyPrefix+board.Key()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAnalysisNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by board: %w", err)
	}

	var analysis entity.Analysis
	if err = json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}

func (that *AnalysisRedisRepository) DeleteByBoard(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, analysisKeyPrefix+board.Key()).Result()
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	if deleted == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}

// storedAnalysis drops the picked move, it depends on the tie-break.
func storedAnalysis(analysis *entity.Analysis) *entity.Analysis {
	stored := *analysis
	stored.Move = nil
	return &stored
}
