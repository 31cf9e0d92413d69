// Package format provides an ordered registry of configuration decoders.
//
// A Format binds a name and a set of file extensions to a ParseFunc that turns
// raw bytes into a value.Value. The registry answers two questions for a
// loader:
//   - which format does this extension select (see Registry.ForExtension)
//   - which formats should be tried, and in what order, when the extension
//     selects nothing (see Registry.Fallbacks)
//
// Default returns a registry with the builtin formats: json, jsonc, toml,
// ron, yaml, ini, dotenv and cbor. YAML is tried late during fallback because
// it accepts arbitrary text as a string scalar.
//
// RON is tried before YAML, so a plaintext secret without an extension that
// happens to be a RON literal takes the RON type: "None" is Null, "0123" is
// the integer 123 and "true" is a Bool. Name such files with the extension of
// the intended format (.yaml keeps "None" a String), or register a custom
// format, when the raw text must be kept.
package format
