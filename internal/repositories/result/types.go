package result

import "github.com/KirkDiggler/yahtzee/internal/models"

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	GameID string
}

type GetHighScoresInput struct {
	// Limit caps the number of results; zero or less means DefaultHighScoreLimit
	Limit int
}

type GetHighScoresOutput struct {
	Results []*models.GameResult
}
