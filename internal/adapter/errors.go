package adapter

import "errors"

var (
	ErrNotReady       = errors.New("server is not ready")
	ErrNotFound       = errors.New("health endpoint not found")
	ErrServerError    = errors.New("server error")
	ErrInvalidBaseURL = errors.New("invalid base url")
)
