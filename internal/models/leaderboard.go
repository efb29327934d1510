package models

// LeaderboardEntry is one ranked row of the high-score table
type LeaderboardEntry struct {
	// Rank is the 1-based position on the board
	Rank int

	// Result is the completed game at this position
	Result *GameResult
}

// Leaderboard represents the best completed games, highest total first
type Leaderboard struct {
	Entries []*LeaderboardEntry
}
