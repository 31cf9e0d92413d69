package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/configsecret/value"
)

// ParseYAML decodes the first YAML document. An empty document is Null and
// bare text is a String. Later documents must still be well formed, so text
// that only looks like YAML up to its first line (a sectioned INI file, for
// instance) is rejected instead of being truncated.
func ParseYAML(data []byte) (value.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var out any
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return value.Null(), nil
		}
		return value.Value{}, fmt.Errorf("yaml: %w", err)
	}

	var rest yaml.Node
	if err := dec.Decode(&rest); err != nil && !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("yaml: %w", err)
	}
	return value.FromAny(out)
}
