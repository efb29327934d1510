package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusOver indicates every category has been filled
	GameStatusOver GameStatus = "game_over"

	// GameStatusQuit indicates the player abandoned the game
	GameStatusQuit GameStatus = "quit"
)

// TurnState represents where the current turn is in its lifecycle
type TurnState string

const (
	// TurnStateAwaitingRoll indicates no dice have been rolled this turn
	TurnStateAwaitingRoll TurnState = "awaiting_roll"

	// TurnStateRolled indicates the player may freeze, roll again, or score
	TurnStateRolled TurnState = "rolled_awaiting_action"

	// TurnStateScored indicates the turn has been committed to a category
	TurnStateScored TurnState = "scored"
)

// Game is a read-only snapshot of a game session for display
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Turn is the 1-based number of the current turn
	Turn int

	// TurnState is the state of the current turn
	TurnState TurnState

	// RollsRemaining is how many rolls are left in the current turn
	RollsRemaining int

	// Dice holds the five dice of the current turn
	Dice []Die

	// Scores holds committed scores; open categories are absent
	Scores map[Category]int

	// Total is the running sum of committed scores
	Total int

	// FinalTotal is set once Status is GameStatusOver
	FinalTotal int

	// CreatedAt is when the game was started
	CreatedAt time.Time

	// UpdatedAt is when the game was last changed
	UpdatedAt time.Time
}

// IsOver reports whether every category has been filled
func (g *Game) IsOver() bool {
	return g.Status == GameStatusOver
}

// Values returns the face values of the dice in order
func (g *Game) Values() []int {
	values := make([]int, len(g.Dice))
	for i, d := range g.Dice {
		values[i] = d.Value
	}
	return values
}
