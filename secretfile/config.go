package secretfile

import (
	"fmt"
	"strings"
)

const (
	// DefaultSeparator delimits the prefix, the path segments and the suffix.
	DefaultSeparator = "_"

	// DefaultSuffix is the trigger that marks a variable as a secret file.
	DefaultSuffix = "FILE"
)

// KeyCase controls how path segments derived from variable names are cased.
type KeyCase int

const (
	// KeyCasePreserve keeps segments exactly as they appear in the name.
	KeyCasePreserve KeyCase = iota

	// KeyCaseLower lower-cases every segment.
	KeyCaseLower
)

// String returns the name of the key case.
func (k KeyCase) String() string {
	switch k {
	case KeyCasePreserve:
		return "preserve"
	case KeyCaseLower:
		return "lower"
	default:
		return fmt.Sprintf("KeyCase(%d)", int(k))
	}
}

// Config configures variable name matching and path resolution.
//
// With the defaults, APP_REDIS_PASSWORD_FILE resolves to the path
// [REDIS PASSWORD] and APP_FILE to the root.
type Config struct {
	// Prefix is matched case-insensitively at the start of variable names.
	Prefix string

	// Separator splits path segments. Default "_".
	Separator string

	// PrefixSeparator follows the prefix. Defaults to Separator.
	PrefixSeparator string

	// SuffixSeparator precedes the suffix. Defaults to Separator.
	SuffixSeparator string

	// Suffix is the trigger word. Default "FILE".
	Suffix string

	// KeepPrefix makes the prefix, as typed in the variable name, the first
	// path segment. The whole-document variable still merges at the root.
	KeepPrefix bool

	// KeyCase selects segment casing. Default KeyCasePreserve.
	KeyCase KeyCase

	// ExpandPaths expands $VAR and ${VAR} in file paths against the same
	// environment. A ${VAR} that is unset fails the collection.
	ExpandPaths bool
}

// withDefaults returns a copy of c with empty fields filled in.
func (c Config) withDefaults() Config {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.PrefixSeparator == "" {
		c.PrefixSeparator = c.Separator
	}
	if c.SuffixSeparator == "" {
		c.SuffixSeparator = c.Separator
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	return c
}

// Validate validates the configuration after defaults are applied.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return ErrMissingPrefix
	}
	d := c.withDefaults()
	for _, sep := range []string{d.Separator, d.PrefixSeparator, d.SuffixSeparator} {
		if strings.Contains(sep, "=") {
			return fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
		}
	}
	if strings.Contains(d.Suffix, "=") {
		return fmt.Errorf("%w: %q", ErrInvalidSuffix, d.Suffix)
	}
	if d.KeyCase != KeyCasePreserve && d.KeyCase != KeyCaseLower {
		return fmt.Errorf("%w: %v", ErrInvalidKeyCase, d.KeyCase)
	}
	return nil
}
