package scorecard

// ScorecardError is a custom error type for scorecard-related errors
type ScorecardError string

// Error implements the error interface
func (e ScorecardError) Error() string {
	return string(e)
}

const (
	ErrAlreadyFilled   ScorecardError = "category already filled"
	ErrUnknownCategory ScorecardError = "unknown scoring category"
)
