package session

import "errors"

var (
	ErrRegistryClosed = errors.New("session registry closed")
	ErrUnknownMessage = errors.New("unknown live message")
)
