package value

import "errors"

// ErrUnsupported indicates a Go value that has no Value representation.
var ErrUnsupported = errors.New("value: unsupported type")
