package secretfile

import (
	"errors"
	"fmt"
	"strings"
)

// Path is a location in the configuration tree. The empty Path is the root.
type Path []string

// String joins the segments with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Resolve converts a qualifying variable name into a Path.
//
// The prefix and separator are stripped from the front and the separator
// and suffix from the back. The remainder is split on the separator. Every
// segment must be non-empty, so APP__FILE and APP_A__B_FILE fail with
// ErrInvalidPath. The whole-document name (APP_FILE) always resolves to the
// root, even with KeepPrefix.
func Resolve(name string, cfg Config) (Path, error) {
	cfg = cfg.withDefaults()

	if !qualifies(name, cfg) {
		return nil, &Error{
			Kind:     ErrInvalidPath,
			Variable: name,
			Err:      fmt.Errorf("name does not match %s%s...%s%s", cfg.Prefix, cfg.PrefixSeparator, cfg.SuffixSeparator, cfg.Suffix),
		}
	}

	if isRootName(name, cfg) {
		return nil, nil
	}

	var path Path
	if cfg.KeepPrefix {
		path = append(path, name[:len(cfg.Prefix)])
	}

	head := len(cfg.Prefix) + len(cfg.PrefixSeparator)
	tail := len(cfg.SuffixSeparator) + len(cfg.Suffix)
	rest := name[head : len(name)-tail]
	if rest == "" {
		return nil, &Error{Kind: ErrInvalidPath, Variable: name, Err: errors.New("empty path segment")}
	}
	for i, seg := range strings.Split(rest, cfg.Separator) {
		if seg == "" {
			return nil, &Error{
				Kind:     ErrInvalidPath,
				Variable: name,
				Err:      fmt.Errorf("empty path segment at position %d", i),
			}
		}
		path = append(path, seg)
	}

	if cfg.KeyCase == KeyCaseLower {
		for i, seg := range path {
			path[i] = strings.ToLower(seg)
		}
	}
	return path, nil
}
