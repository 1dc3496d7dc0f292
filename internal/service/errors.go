package service

import "errors"

var (
	ErrSessionNotFound         = errors.New("diagnosis session not found")
	ErrSessionAlreadyCompleted = errors.New("diagnosis session already completed")
	ErrResultNotReady          = errors.New("diagnosis result not ready")
	ErrUnknownQuestion         = errors.New("unknown question")
	ErrUnexpectedQuestion      = errors.New("question is not the one currently asked")
	ErrInvalidAnswer           = errors.New("invalid answer")
)
