package messaging

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is used after a poor result
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is used for a strong hand or score
	ToneCelebration MessageTone = "celebration"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed fixes message selection; zero seeds from the clock
	Seed int64
}

// GetRollMessageInput contains the dice after a roll
type GetRollMessageInput struct {
	PlayerName string
	Values     []int
}

// GetRollMessageOutput contains the message for a roll
type GetRollMessageOutput struct {
	// Message is empty when the hand is not worth a comment
	Message string

	// Hand is the best pattern the dice form, if any
	Hand models.Category
	Tone MessageTone
}

// GetScoreMessageInput describes a committed category
type GetScoreMessageInput struct {
	PlayerName string
	Category   models.Category
	Score      int
}

// GetScoreMessageOutput contains the message for a score
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput describes a finished game
type GetGameOverMessageInput struct {
	PlayerName string
	FinalTotal int

	// Rank is the game's 1-based place on the high-score table, or zero
	// when it did not place
	Rank int
}

// GetGameOverMessageOutput contains the closing message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
