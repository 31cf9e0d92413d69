package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/jonwraymond/configsecret/value"
)

// ParseJSON decodes a single JSON document. Integers stay integers.
func ParseJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return value.Value{}, fmt.Errorf("json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Value{}, errors.New("json: unexpected data after top-level value")
	}
	return value.FromAny(out)
}

// ParseJSONC decodes JSON extended with comments and trailing commas.
func ParseJSONC(data []byte) (value.Value, error) {
	v, err := ParseJSON(jsonc.ToJSON(data))
	if err != nil {
		return value.Value{}, fmt.Errorf("jsonc: %w", err)
	}
	return v, nil
}
