package secretfile

import (
	"os"
	"strings"
)

// EnvironFunc returns the environment as "KEY=VALUE" entries, in the shape
// of os.Environ.
type EnvironFunc func() []string

// MapEnviron returns an EnvironFunc over a fixed set of variables. Entry
// order follows map iteration and is therefore unspecified.
func MapEnviron(env map[string]string) EnvironFunc {
	return func() []string {
		out := make([]string, 0, len(env))
		for k, v := range env {
			out = append(out, k+"="+v)
		}
		return out
	}
}

// lookupFunc builds a lookup over environ. The first entry for a name wins,
// as with os.Getenv.
func lookupFunc(environ []string) func(string) (string, bool) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		if _, seen := vars[k]; !seen {
			vars[k] = v
		}
	}
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

var defaultEnviron EnvironFunc = os.Environ
