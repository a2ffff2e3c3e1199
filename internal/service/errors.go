package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of user input.
	// The validator's reason is wrapped alongside it.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
