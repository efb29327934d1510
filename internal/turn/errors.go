package turn

// TurnError is a custom error type for turn-related errors
type TurnError string

// Error implements the error interface
func (e TurnError) Error() string {
	return string(e)
}

const (
	ErrNoRollsRemaining    TurnError = "no rolls remaining this turn"
	ErrNotYetRolled        TurnError = "dice have not been rolled this turn"
	ErrCategoryUnavailable TurnError = "category already filled"
	ErrTurnOver            TurnError = "turn has already been scored"
	ErrNilConfig           TurnError = "config cannot be nil"
	ErrNilDice             TurnError = "dice cannot be nil"
	ErrNilScorecard        TurnError = "scorecard cannot be nil"
	ErrNilRules            TurnError = "scoring rules cannot be nil"
)
