// Package observe provides observability primitives for configuration
// sources.
//
// It is a pure instrumentation library: tracing, metrics and structured
// logging around a source's Collect call. It never sees secret content; only
// variable names, file paths and format names reach spans and log lines.
package observe
