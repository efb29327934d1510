package dice

// DiceError is a custom error type for dice-related errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

const (
	ErrOutOfRange   DiceError = "die index out of range"
	ErrNilRoller    DiceError = "dice roller cannot be nil"
	ErrInvalidValue DiceError = "roller returned a value outside the die faces"
)
