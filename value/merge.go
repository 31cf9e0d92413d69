package value

// Merge combines incoming into base and returns the result.
//
// When both are Maps the result holds every key of base, with keys present
// in incoming merged recursively. Any other combination of kinds yields
// incoming unchanged, so scalars and sequences are replaced wholesale.
func Merge(base, incoming Value) Value {
	if base.kind != KindMap || incoming.kind != KindMap {
		return incoming
	}
	out := make(map[string]Value, len(base.m)+len(incoming.m))
	for k, v := range base.m {
		out[k] = v
	}
	for k, in := range incoming.m {
		if existing, ok := out[k]; ok {
			out[k] = Merge(existing, in)
			continue
		}
		out[k] = in
	}
	return Value{kind: KindMap, m: out}
}
