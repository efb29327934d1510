package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/yahtzee/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// StartGame opens a new game with an empty scorecard and its first turn
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice rolls every unfrozen die in the current turn
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ToggleFreeze holds or releases one die for the next roll
	ToggleFreeze(ctx context.Context, input *ToggleFreezeInput) (*ToggleFreezeOutput, error)

	// SelectCategory scores the current dice, ends the turn and advances the game
	SelectCategory(ctx context.Context, input *SelectCategoryInput) (*SelectCategoryOutput, error)

	// QuitGame abandons a game before it is complete
	QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error)

	// GetGame returns a snapshot of a game for display
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetFinalTotal returns the final score of a finished game
	GetFinalTotal(ctx context.Context, input *GetFinalTotalInput) (*GetFinalTotalOutput, error)

	// GetHighScores returns the best completed games
	GetHighScores(ctx context.Context, input *GetHighScoresInput) (*GetHighScoresOutput, error)
}
