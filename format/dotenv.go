package format

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/jonwraymond/configsecret/value"
)

// ParseDotenv decodes KEY=VALUE lines into a flat map of strings.
func ParseDotenv(data []byte) (value.Value, error) {
	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return value.Value{}, fmt.Errorf("dotenv: %w", err)
	}
	out := make(map[string]value.Value, len(vars))
	for k, v := range vars {
		out[k] = value.String(v)
	}
	return value.Map(out), nil
}
