package messaging

import "errors"

var (
	ErrNilInput       = errors.New("input cannot be nil")
	ErrWrongDiceCount = errors.New("roll must have exactly five dice")
)
