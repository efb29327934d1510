package models

import (
	"time"
)

// GameResult is the record of a completed game kept in the high-score table
type GameResult struct {
	// ID is the game the result belongs to
	ID string `json:"id"`

	// PlayerName is who played the game
	PlayerName string `json:"player_name"`

	// Scores holds the committed score of every category
	Scores map[Category]int `json:"scores"`

	// Total is the final score
	Total int `json:"total"`

	// StartedAt is when the game was started
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when the last category was filled
	CompletedAt time.Time `json:"completed_at"`
}
