package secretfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonwraymond/configsecret/format"
	"github.com/jonwraymond/configsecret/value"
)

// Loader reads secret files and decodes them with a format registry.
//
// Contract:
//   - Concurrency: safe for concurrent use when the registry is.
//   - Errors: returns *Error with Kind ErrFileNotFound, ErrFileRead,
//     ErrParse or ErrFormatDetection.
//   - Ownership: file content is never retained or logged.
type Loader struct {
	registry *format.Registry
}

// NewLoader creates a Loader. A nil registry selects format.Default().
func NewLoader(registry *format.Registry) *Loader {
	if registry == nil {
		registry = format.Default()
	}
	return &Loader{registry: registry}
}

// Load reads path and returns its decoded value and the name of the format
// that accepted it.
//
// A recognized extension selects exactly one format and a parse failure is
// final. Otherwise the registry's fallback formats are tried in order and
// the first success wins.
func (l *Loader) Load(path string) (value.Value, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := ErrFileRead
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrFileNotFound
		}
		return value.Value{}, "", &Error{Kind: kind, File: path, Err: err}
	}

	if f, ok := l.registry.ForExtension(filepath.Ext(path)); ok {
		v, err := f.Parse(data)
		if err != nil {
			return value.Value{}, f.Name, &Error{Kind: ErrParse, File: path, Format: f.Name, Err: err}
		}
		return v, f.Name, nil
	}

	fallbacks := l.registry.Fallbacks()
	errs := make([]error, 0, len(fallbacks))
	for _, f := range fallbacks {
		v, err := f.Parse(data)
		if err == nil {
			return v, f.Name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
	}
	if len(errs) == 0 {
		errs = append(errs, errors.New("no fallback formats registered"))
	}
	return value.Value{}, "", &Error{Kind: ErrFormatDetection, File: path, Err: errors.Join(errs...)}
}
