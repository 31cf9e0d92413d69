package secretfile

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// sliceEnviron returns an EnvironFunc yielding entries in the given order.
func sliceEnviron(entries ...string) EnvironFunc {
	return func() []string {
		out := make([]string, len(entries))
		copy(out, entries)
		return out
	}
}
