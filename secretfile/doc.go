// Package secretfile implements a configuration source for the Docker and
// Kubernetes secret file convention.
//
// An environment variable named
//
//	<PREFIX>_<SEGMENT_1>_..._<SEGMENT_N>_FILE=/run/secrets/name
//
// does not carry a value itself. It names a file whose structured content is
// parsed (see the format package) and merged into the configuration tree at
// the path [SEGMENT_1, ..., SEGMENT_N]. The variable <PREFIX>_FILE merges a
// whole document at the root.
//
// Variables that start with the prefix but do not end in the FILE trigger
// are ignored; they belong to a plain environment source. Collection is
// deterministic: candidates are applied in byte-wise name order, and any
// failure aborts the whole collection.
//
// A Source can be loaded directly by github.com/knadh/koanf/v2:
//
//	src, _ := secretfile.New(secretfile.Config{Prefix: "APP"})
//	k := koanf.New(".")
//	_ = k.Load(src, nil)
package secretfile
