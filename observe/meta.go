package observe

// SourceMeta identifies a configuration source in telemetry.
type SourceMeta struct {
	Name   string // Source name (required), e.g. "secretfile"
	Prefix string // Environment prefix the source scans (optional)
}

// SpanName returns the deterministic span name for this source.
// Format: secretfile.collect.<name>
func (m SourceMeta) SpanName() string {
	return "secretfile.collect." + m.Name
}

// SourceID returns the source identifier used in attributes.
// Format: <name>:<prefix> or <name>
func (m SourceMeta) SourceID() string {
	if m.Prefix != "" {
		return m.Name + ":" + m.Prefix
	}
	return m.Name
}

// Validate reports ErrMissingSourceName when Name is empty.
func (m SourceMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingSourceName
	}
	return nil
}
