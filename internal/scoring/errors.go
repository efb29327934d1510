package scoring

// ScoringError is a custom error type for scoring-related errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrUnknownCategory ScoringError = "unknown scoring category"
	ErrInvalidDieValue ScoringError = "die value must be between 1 and 6"
)
