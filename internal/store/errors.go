package store

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardNotFound is returned when a tier has no record of the board.
	ErrBoardNotFound = errors.New("board not found")

	// ErrSessionExpired is returned by the remote tier when the session
	// token is past its expiry. No request is sent in that case.
	ErrSessionExpired = errors.New("session token expired")
)

// StatusError reports a non-2xx response from the backend API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}
