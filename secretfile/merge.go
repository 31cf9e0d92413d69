package secretfile

import (
	"fmt"

	"github.com/jonwraymond/configsecret/value"
)

// Apply merges incoming into tree at path and returns the new tree. tree is
// not modified.
//
// An empty path merges at the root, where incoming must be a Map (Null is a
// no-op). Otherwise every intermediate node must be a Map or absent, and
// the node at the final segment must be a Map, Null or absent. Any other
// node fails with ErrMergeConflict.
func Apply(tree value.Value, path Path, incoming value.Value) (value.Value, error) {
	if len(path) == 0 {
		switch {
		case incoming.IsNull():
			return tree, nil
		case !incoming.IsMap():
			return value.Value{}, &Error{
				Kind: ErrMergeConflict,
				Err:  fmt.Errorf("root document must be a map, got %s", incoming.Kind()),
			}
		}
		return value.Merge(tree, incoming), nil
	}
	return applyAt(tree, path, 0, incoming)
}

func applyAt(node value.Value, path Path, depth int, incoming value.Value) (value.Value, error) {
	key := path[depth]
	child, exists := node.Get(key)
	occupied := exists && !child.IsNull() && !child.IsMap()

	if occupied {
		return value.Value{}, &Error{
			Kind: ErrMergeConflict,
			Key:  path[:depth+1].String(),
			Err:  fmt.Errorf("existing value is %s", child.Kind()),
		}
	}

	if depth == len(path)-1 {
		return node.With(key, value.Merge(child, incoming)), nil
	}

	if !child.IsMap() {
		child = value.EmptyMap()
	}
	updated, err := applyAt(child, path, depth+1, incoming)
	if err != nil {
		return value.Value{}, err
	}
	return node.With(key, updated), nil
}
