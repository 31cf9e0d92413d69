// Package value provides the tagged hierarchical value shared by configuration
// decoders and the configuration tree.
//
// A Value is one of Null, Bool, Int, Float, String, Seq or Map. Values are
// immutable: constructors copy their inputs and Map/Seq accessors hand out
// copies, so a tree can be shared freely once built.
//
// Merge combines two values with the configuration merge rule: maps merge
// key-by-key, every other combination is replaced wholesale by the incoming
// value. Sequences are never concatenated.
package value
