package terminal

import "errors"

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
	ErrUnknownOption  = errors.New("prompter returned an option that was not offered")
)
