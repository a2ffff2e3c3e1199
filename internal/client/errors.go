package client

import "errors"

var (
	ErrMissingCommand = errors.New("missing command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingUserID  = errors.New("missing user id")
	ErrInvalidArgs    = errors.New("invalid arguments")
)
