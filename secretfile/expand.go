package secretfile

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandStrict expands variables in s using lookup.
//
// Semantics:
//   - `$VAR` and `${VAR}` are expanded via os.Expand.
//   - If `${VAR}` is present but VAR is missing, it errors.
//   - `$$` emits a literal `$`.
func expandStrict(s string, lookup func(string) (string, bool)) (string, error) {
	const dollarSentinel = "\x00SECRETFILE_DOLLAR\x00"
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	missing := make(map[string]struct{})
	for _, match := range envVarPattern.FindAllStringSubmatch(s, -1) {
		key := match[1]
		if _, ok := lookup(key); !ok {
			missing[key] = struct{}{}
		}
	}
	if len(missing) > 0 {
		keys := make([]string, 0, len(missing))
		for k := range missing {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", fmt.Errorf("missing required environment variables: %s", strings.Join(keys, ", "))
	}

	s = os.Expand(s, func(key string) string {
		v, _ := lookup(key)
		return v
	})
	s = strings.ReplaceAll(s, dollarSentinel, "$")
	return s, nil
}
