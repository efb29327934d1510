package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yahtzee/internal/services/messaging Service

// Service is the interface for the commentary shown between moves
type Service interface {
	// GetRollMessage calls out a notable hand. The message is empty for an
	// ordinary roll.
	GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error)

	// GetScoreMessage reacts to a committed category
	GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error)

	// GetGameOverMessage sums up a finished game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
