package format

import "errors"

var (
	// ErrInvalidFormat indicates a Format with no name or no parse function.
	ErrInvalidFormat = errors.New("format: invalid format registration")

	// ErrDuplicateFormat indicates a name or extension is already registered.
	ErrDuplicateFormat = errors.New("format: already registered")
)
