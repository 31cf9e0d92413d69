package health

import "errors"

var (
	// ErrCheckTimeout indicates a check did not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrDuplicateChecker indicates a checker name is already registered.
	ErrDuplicateChecker = errors.New("health: checker already registered")

	// ErrInvalidChecker indicates a nil checker or an empty name.
	ErrInvalidChecker = errors.New("health: invalid checker")
)
