package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrGameNotActive    GameError = "game is no longer active"
	ErrGameNotOver      GameError = "game is not over yet"
	ErrTurnInProgress   GameError = "turn has not been scored yet"
	ErrInvalidInput     GameError = "input cannot be nil"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
