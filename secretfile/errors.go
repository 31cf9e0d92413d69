package secretfile

import (
	"errors"
	"strings"
)

// Collection errors. Every *Error wraps exactly one of these as its Kind.
var (
	// ErrInvalidPath indicates a qualifying variable name yields an empty
	// path segment.
	ErrInvalidPath = errors.New("secretfile: invalid path")

	// ErrFileNotFound indicates the referenced file does not exist.
	ErrFileNotFound = errors.New("secretfile: file not found")

	// ErrFileRead indicates an I/O failure other than not-found.
	ErrFileRead = errors.New("secretfile: file read failed")

	// ErrFormatDetection indicates no fallback format accepted the content.
	ErrFormatDetection = errors.New("secretfile: format detection failed")

	// ErrParse indicates the format selected by extension rejected the content.
	ErrParse = errors.New("secretfile: parse failed")

	// ErrMergeConflict indicates a path collides with an existing non-map value.
	ErrMergeConflict = errors.New("secretfile: merge conflict")

	// ErrUnresolvedVariable indicates path expansion referenced an unset variable.
	ErrUnresolvedVariable = errors.New("secretfile: unresolved variable")
)

// Configuration errors.
var (
	// ErrMissingPrefix indicates Config.Prefix is empty.
	ErrMissingPrefix = errors.New("secretfile: prefix is required")

	// ErrInvalidSeparator indicates a separator contains '='.
	ErrInvalidSeparator = errors.New("secretfile: invalid separator")

	// ErrInvalidSuffix indicates the trigger suffix contains '='.
	ErrInvalidSuffix = errors.New("secretfile: invalid suffix")

	// ErrInvalidKeyCase indicates an unknown KeyCase.
	ErrInvalidKeyCase = errors.New("secretfile: invalid key case")
)

// ErrNilChangeFunc is returned by Source.Watch when onChange is nil.
var ErrNilChangeFunc = errors.New("secretfile: change callback is nil")

// ErrReadBytesUnsupported is returned by Source.ReadBytes.
var ErrReadBytesUnsupported = errors.New("secretfile: ReadBytes is not supported, use Read")

// Error describes a collection failure and the variable it belongs to.
//
// errors.Is matches both the Kind sentinel and the underlying cause, so
// errors.Is(err, ErrFileNotFound) and errors.Is(err, fs.ErrNotExist) both
// hold for a missing file.
type Error struct {
	Kind     error
	Variable string
	File     string
	Format   string
	Key      string
	Err      error
}

func (e *Error) Error() string {
	return e.render(true)
}

// Redacted renders e without its cause. Parser messages may quote the
// offending token, so only Kind, Variable, File, Format and Key are kept.
func (e *Error) Redacted() string {
	return e.render(false)
}

func (e *Error) render(withCause bool) string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("secretfile: error")
	}
	if e.Variable != "" {
		b.WriteString(": variable ")
		b.WriteString(e.Variable)
	}
	if e.File != "" {
		b.WriteString(": file ")
		b.WriteString(e.File)
	}
	if e.Format != "" {
		b.WriteString(": format ")
		b.WriteString(e.Format)
	}
	if e.Key != "" {
		b.WriteString(": key ")
		b.WriteString(e.Key)
	}
	if withCause && e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// withVariable attributes err to the named variable when it is an *Error.
func withVariable(err error, name string) error {
	var e *Error
	if errors.As(err, &e) && e.Variable == "" {
		e.Variable = name
	}
	return err
}

// Redact returns an error safe to log or serve. When err carries an *Error
// its message is the Redacted rendering; errors.Is and errors.As still see
// the full chain. Other errors are returned unchanged.
func Redact(err error) error {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return err
	}
	return &redactedError{msg: e.Redacted(), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (r *redactedError) Error() string { return r.msg }
func (r *redactedError) Unwrap() error { return r.err }
