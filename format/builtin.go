package format

// Builtin format names.
const (
	JSON   = "json"
	JSONC  = "jsonc"
	TOML   = "toml"
	RON    = "ron"
	YAML   = "yaml"
	INI    = "ini"
	Dotenv = "dotenv"
	CBOR   = "cbor"
)

func builtins() []Format {
	return []Format{
		{Name: JSON, Extensions: []string{"json"}, Parse: ParseJSON, Fallback: true},
		{Name: JSONC, Extensions: []string{"jsonc"}, Parse: ParseJSONC, Fallback: true},
		{Name: TOML, Extensions: []string{"toml"}, Parse: ParseTOML, Fallback: true},
		{Name: RON, Extensions: []string{"ron"}, Parse: ParseRON, Fallback: true},
		{Name: YAML, Extensions: []string{"yaml", "yml"}, Parse: ParseYAML, Fallback: true},
		{Name: INI, Extensions: []string{"ini"}, Parse: ParseINI, Fallback: true},
		{Name: Dotenv, Extensions: []string{"env"}, Parse: ParseDotenv},
		{Name: CBOR, Extensions: []string{"cbor"}, Parse: ParseCBOR},
	}
}
