package format

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jonwraymond/configsecret/value"
)

// ParseTOML decodes a TOML document. Datetimes become RFC 3339 strings.
func ParseTOML(data []byte) (value.Value, error) {
	out := make(map[string]any)
	if err := toml.Unmarshal(data, &out); err != nil {
		return value.Value{}, fmt.Errorf("toml: %w", err)
	}
	return value.FromAny(out)
}
