package secretfile

import (
	"github.com/jonwraymond/configsecret/format"
	"github.com/jonwraymond/configsecret/observe"
)

// Option configures a Source.
type Option func(*Source)

// WithEnviron sets the environment provider. Default os.Environ.
func WithEnviron(environ EnvironFunc) Option {
	return func(s *Source) {
		if environ != nil {
			s.environ = environ
		}
	}
}

// WithRegistry sets the format registry. Default format.Default().
func WithRegistry(registry *format.Registry) Option {
	return func(s *Source) {
		s.registry = registry
	}
}

// WithObserver records spans, metrics and logs through obs.
func WithObserver(obs observe.Observer) Option {
	return func(s *Source) {
		s.observer = obs
	}
}

// WithLogger overrides the logger. It applies after WithObserver.
func WithLogger(logger observe.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}
