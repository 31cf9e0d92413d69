package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jonwraymond/configsecret/value"
)

// ParseFunc decodes raw file content.
//
// Implementations must be safe for concurrent use and must not retain data.
type ParseFunc func(data []byte) (value.Value, error)

// Format describes one registered decoder.
type Format struct {
	// Name identifies the format in errors and logs (e.g. "yaml").
	Name string

	// Extensions selects this format by file extension, with or without the
	// leading dot. Matching is case-insensitive.
	Extensions []string

	// Parse decodes the content.
	Parse ParseFunc

	// Fallback marks the format as a candidate when the extension is
	// missing or unknown.
	Fallback bool
}

// Registry is an ordered set of formats.
type Registry struct {
	mu      sync.RWMutex
	formats []Format
	byName  map[string]int
	byExt   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]int),
		byExt:  make(map[string]int),
	}
}

// Default creates a registry holding the builtin formats.
func Default() *Registry {
	r := NewRegistry()
	for _, f := range builtins() {
		if err := r.Register(f); err != nil {
			panic("format: builtin registration failed: " + err.Error())
		}
	}
	return r
}

// Register appends f to the registry.
func (r *Registry) Register(f Format) error {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	if name == "" || f.Parse == nil {
		return ErrInvalidFormat
	}
	exts := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		ext = normalizeExt(ext)
		if ext == "" {
			return fmt.Errorf("%w: empty extension for %q", ErrInvalidFormat, name)
		}
		exts = append(exts, ext)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: format %q", ErrDuplicateFormat, name)
	}
	for _, ext := range exts {
		if idx, exists := r.byExt[ext]; exists {
			return fmt.Errorf("%w: extension %q is bound to %q", ErrDuplicateFormat, ext, r.formats[idx].Name)
		}
	}

	f.Name = name
	f.Extensions = exts
	idx := len(r.formats)
	r.formats = append(r.formats, f)
	r.byName[name] = idx
	for _, ext := range exts {
		r.byExt[ext] = idx
	}
	return nil
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Format{}, false
	}
	return r.formats[idx], true
}

// ForExtension returns the format bound to ext.
func (r *Registry) ForExtension(ext string) (Format, bool) {
	ext = normalizeExt(ext)
	if ext == "" {
		return Format{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byExt[ext]
	if !ok {
		return Format{}, false
	}
	return r.formats[idx], true
}

// Fallbacks returns the fallback formats in trial order: json first when it
// is registered, then the rest in registration order.
func (r *Registry) Fallbacks() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.formats))
	if idx, ok := r.byName[JSON]; ok && r.formats[idx].Fallback {
		out = append(out, r.formats[idx])
	}
	for _, f := range r.formats {
		if f.Fallback && f.Name != JSON {
			out = append(out, f)
		}
	}
	return out
}

// List returns registered format names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.formats))
	for i, f := range r.formats {
		names[i] = f.Name
	}
	return names
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
