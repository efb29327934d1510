package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "result:"
	highScoresKey   = "high_scores"

	// DefaultHighScoreLimit is used when no limit is requested
	DefaultHighScoreLimit = 10
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a result to Redis
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.Result.ID)
	pipe.Set(ctx, resultKey, resultJSON, 0)

	pipe.ZAdd(ctx, highScoresKey, redis.Z{
		Score:  float64(input.Result.Total),
		Member: input.Result.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves a result by game ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	resultKey := fmt.Sprintf("%s%s", resultKeyPrefix, input.GameID)
	resultJSON, err := r.client.Get(ctx, resultKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetHighScores retrieves the top results from the sorted set
func (r *redisRepository) GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error) {
	limit := DefaultHighScoreLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	gameIDs, err := r.client.ZRevRange(ctx, highScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get high scores: %w", err)
	}

	results := make([]*models.GameResult, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		result, err := r.GetResult(ctx, &GetResultInput{
			GameID: gameID,
		})
		if err != nil {
			// Skip ranks whose record has gone missing
			if errors.Is(err, ErrResultNotFound) {
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &GetHighScoresOutput{
		Results: results,
	}, nil
}
