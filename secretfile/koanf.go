package secretfile

import (
	"context"

	"github.com/knadh/koanf/v2"
)

var _ koanf.Provider = (*Source)(nil)

// Read implements koanf.Provider. It collects with a background context and
// returns the tree as nested map[string]any.
func (s *Source) Read() (map[string]any, error) {
	v, err := s.Collect(context.Background())
	if err != nil {
		return nil, err
	}
	return v.AnyMap(), nil
}

// ReadBytes implements koanf.Provider. The source has no single byte
// representation.
func (s *Source) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesUnsupported
}
