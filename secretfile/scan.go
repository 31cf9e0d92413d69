package secretfile

import (
	"cmp"
	"slices"
	"strings"
)

// Candidate is one qualifying variable and the file path it names.
type Candidate struct {
	Name string
	Path string
}

// Scan returns the variables in environ that denote secret files under cfg,
// sorted by name byte-wise. Entries with an empty value are skipped.
func Scan(environ []string, cfg Config) []Candidate {
	cfg = cfg.withDefaults()

	var out []Candidate
	for _, kv := range environ {
		name, path, ok := strings.Cut(kv, "=")
		if !ok || name == "" || path == "" {
			continue
		}
		if !qualifies(name, cfg) {
			continue
		}
		out = append(out, Candidate{Name: name, Path: path})
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
	return out
}

// qualifies reports whether name is the whole-document variable or starts
// with prefix+separator and ends with separator+suffix. cfg must have its
// defaults applied.
func qualifies(name string, cfg Config) bool {
	if isRootName(name, cfg) {
		return true
	}
	head := cfg.Prefix + cfg.PrefixSeparator
	tail := cfg.SuffixSeparator + cfg.Suffix
	if len(name) < len(head)+len(tail) {
		return false
	}
	return strings.EqualFold(name[:len(head)], head) &&
		strings.EqualFold(name[len(name)-len(tail):], tail)
}

func isRootName(name string, cfg Config) bool {
	return strings.EqualFold(name, cfg.Prefix+cfg.PrefixSeparator+cfg.Suffix)
}
