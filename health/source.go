package health

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/configsecret/secretfile"
	"github.com/jonwraymond/configsecret/value"
)

// SourceChecker checks that a configuration source can be collected.
//
// Concurrent checks share one in-flight collection.
type SourceChecker struct {
	name      string
	collector secretfile.Collector
	group     singleflight.Group
}

// NewSourceChecker creates a SourceChecker. An empty name defaults to the
// collector's name.
func NewSourceChecker(name string, collector secretfile.Collector) *SourceChecker {
	if name == "" && collector != nil {
		name = collector.Name()
	}
	return &SourceChecker{name: name, collector: collector}
}

// Name returns the checker name.
func (c *SourceChecker) Name() string { return c.name }

// Check collects the source. Only top-level key names are reported, and
// collection errors are redacted so parser messages never reach the result.
func (c *SourceChecker) Check(ctx context.Context) Result {
	if c.collector == nil {
		return Unhealthy("no collector configured", ErrInvalidChecker)
	}

	start := time.Now()
	ch := c.group.DoChan(c.name, func() (any, error) {
		// Detached from the first caller so its cancellation does not fail
		// every caller sharing the flight.
		return c.collector.Collect(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Unhealthy("collection failed", secretfile.Redact(res.Err)).WithDuration(time.Since(start))
		}
		tree, _ := res.Val.(value.Value)
		if tree.Len() == 0 {
			return Degraded("source contributed no keys").WithDuration(time.Since(start))
		}
		return Healthy("source collected").
			WithDetails(map[string]any{
				"source": c.collector.Name(),
				"keys":   tree.Keys(),
				"shared": res.Shared,
			}).
			WithDuration(time.Since(start))
	case <-ctx.Done():
		return Unhealthy("check timed out", ErrCheckTimeout).WithDuration(time.Since(start))
	}
}

var _ Checker = (*SourceChecker)(nil)
