package service

import "errors"

var (
	// ErrColumnNotFound rejects card creation into a column that no longer
	// exists. Other stale-reference mutations degrade to silent no-ops.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidTheme rejects themes other than light and dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidPriority rejects priorities outside low, medium and high.
	ErrInvalidPriority = errors.New("invalid priority")
)
