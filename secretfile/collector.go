package secretfile

import (
	"context"

	"github.com/jonwraymond/configsecret/value"
)

// Collector produces one configuration source's contribution.
//
// Implementations must be safe for concurrent use and must not log secret
// values. Collect either returns the complete contribution or an error,
// never a partial tree.
type Collector interface {
	Name() string
	Collect(ctx context.Context) (value.Value, error)
}

var _ Collector = (*Source)(nil)
