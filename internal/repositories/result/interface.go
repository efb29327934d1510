package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/yahtzee/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/yahtzee/internal/models"
)

// Repository defines the interface for completed game persistence
type Repository interface {
	// SaveResult persists a completed game and ranks it on the high-score table
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a completed game by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// GetHighScores retrieves the best results, highest total first
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
