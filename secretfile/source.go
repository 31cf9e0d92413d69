package secretfile

import (
	"context"
	"errors"

	"github.com/jonwraymond/configsecret/format"
	"github.com/jonwraymond/configsecret/observe"
	"github.com/jonwraymond/configsecret/value"
)

// SourceName is the name reported by Source.Name.
const SourceName = "secretfile"

// Source collects secret files named by environment variables into one
// configuration tree.
//
// Contract:
//   - Concurrency: Collect is safe for concurrent use; each call builds an
//     independent tree.
//   - Determinism: the same environment and files yield equal trees.
//   - Errors: the first failure aborts the call and is returned as *Error.
//   - Ownership: the returned Value is immutable and owned by the caller.
type Source struct {
	cfg     Config
	environ EnvironFunc
	loader  *Loader
	mw      *observe.Middleware
	meta    observe.SourceMeta
	collect observe.CollectFunc

	registry *format.Registry
	observer observe.Observer
	logger   observe.Logger
}

// New creates a Source.
func New(cfg Config, opts ...Option) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Source{
		cfg:     cfg.withDefaults(),
		environ: defaultEnviron,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mw = observe.NoopMiddleware()
	if s.observer != nil {
		mw, err := observe.MiddlewareFromObserver(s.observer)
		if err != nil {
			return nil, err
		}
		s.mw = mw
	}
	if s.logger != nil {
		s.mw = s.mw.WithLogger(s.logger)
	}
	s.mw = s.mw.WithErrorRedactor(Redact)

	s.loader = NewLoader(s.registry)
	s.meta = observe.SourceMeta{Name: SourceName, Prefix: s.cfg.Prefix}
	s.collect = s.mw.Wrap(s.meta, s.collectTree)
	return s, nil
}

// Name returns SourceName.
func (s *Source) Name() string { return SourceName }

// Collect scans the environment, loads every qualifying file and merges the
// results in name order. It returns the complete tree or the first error.
func (s *Source) Collect(ctx context.Context) (value.Value, error) {
	return s.collect(ctx)
}

func (s *Source) collectTree(ctx context.Context) (value.Value, error) {
	environ := s.environ()

	var lookup func(string) (string, bool)
	if s.cfg.ExpandPaths {
		lookup = lookupFunc(environ)
	}

	tree := value.EmptyMap()
	for _, c := range Scan(environ, s.cfg) {
		if err := ctx.Err(); err != nil {
			return value.Value{}, err
		}

		path, err := Resolve(c.Name, s.cfg)
		if err != nil {
			return value.Value{}, err
		}

		file := c.Path
		if lookup != nil {
			file, err = expandStrict(c.Path, lookup)
			if err != nil {
				return value.Value{}, &Error{Kind: ErrUnresolvedVariable, Variable: c.Name, Err: err}
			}
		}

		v, formatName, err := s.loader.Load(file)
		if err != nil {
			return value.Value{}, withVariable(err, c.Name)
		}

		tree, err = Apply(tree, path, v)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.File = file
				e.Format = formatName
			}
			return value.Value{}, withVariable(err, c.Name)
		}

		s.mw.FileLoaded(ctx, s.meta, c.Name, file, formatName)
	}
	return tree, nil
}
