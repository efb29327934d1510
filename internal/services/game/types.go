package game

import (
	"log/slog"

	"github.com/KirkDiggler/yahtzee/internal/common/clock"
	"github.com/KirkDiggler/yahtzee/internal/common/uuid"
	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/models"
	resultRepo "github.com/KirkDiggler/yahtzee/internal/repositories/result"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

// Config holds configuration for the game service
type Config struct {
	// PlayerName is recorded with completed games
	PlayerName string

	// HighScoreLimit caps GetHighScores when the input does not
	HighScoreLimit int

	// Repository dependencies. ResultRepo is optional; without it
	// completed games are not recorded.
	ResultRepo resultRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Rules         scoring.Rules
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// StartGameInput contains parameters for starting a new game
type StartGameInput struct {
	// PlayerName overrides the configured player name for this game
	PlayerName string
}

// StartGameOutput contains the result of starting a new game
type StartGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// Game is the initial state, with the first turn awaiting a roll
	Game *models.Game
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	GameID string
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	// Values are the five faces after the roll
	Values []int

	// RollsRemaining is how many rolls are left this turn
	RollsRemaining int

	Game *models.Game
}

// ToggleFreezeInput contains parameters for freezing or releasing a die
type ToggleFreezeInput struct {
	GameID string

	// DieIndex is the 0-based position of the die
	DieIndex int
}

// ToggleFreezeOutput contains the result of toggling a die
type ToggleFreezeOutput struct {
	// Frozen is the die's new flag
	Frozen bool

	Game *models.Game
}

// SelectCategoryInput contains parameters for scoring the current turn
type SelectCategoryInput struct {
	GameID   string
	Category models.Category
}

// SelectCategoryOutput contains the result of scoring a turn
type SelectCategoryOutput struct {
	// Score is what the category received
	Score int

	// GameOver is set when this was the last open category
	GameOver bool

	// FinalTotal is set when GameOver is true
	FinalTotal int

	// ResultSaved reports whether the completed game reached the high-score table
	ResultSaved bool

	// Game is the state after advancing: the next turn, or the finished game
	Game *models.Game
}

// QuitGameInput contains parameters for abandoning a game
type QuitGameInput struct {
	GameID string
}

// QuitGameOutput contains the result of abandoning a game
type QuitGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for looking up a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains a snapshot of a game
type GetGameOutput struct {
	Game *models.Game

	// Potential holds what each open category would score with the current
	// dice. Empty until the first roll of a turn.
	Potential map[models.Category]int
}

// GetFinalTotalInput contains parameters for reading the final score
type GetFinalTotalInput struct {
	GameID string
}

// GetFinalTotalOutput contains the final score
type GetFinalTotalOutput struct {
	Total int
}

// GetHighScoresInput contains parameters for listing high scores
type GetHighScoresInput struct {
	// Limit caps the number of entries; zero uses the configured limit
	Limit int
}

// GetHighScoresOutput contains the ranked high scores
type GetHighScoresOutput struct {
	Leaderboard *models.Leaderboard
}
