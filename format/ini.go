package format

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/jonwraymond/configsecret/value"
)

// ParseINI decodes an INI document. Keys outside any section land at the top
// level; every named section becomes a nested map. All values are strings.
func ParseINI(data []byte) (value.Value, error) {
	file, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return value.Value{}, fmt.Errorf("ini: %w", err)
	}

	out := value.EmptyMap()
	for _, section := range file.Sections() {
		keys := make(map[string]value.Value, len(section.Keys()))
		for _, key := range section.Keys() {
			keys[key.Name()] = value.String(key.Value())
		}
		if section.Name() == ini.DefaultSection {
			out = value.Merge(out, value.Map(keys))
			continue
		}
		out = out.With(section.Name(), value.Map(keys))
	}
	return out, nil
}
