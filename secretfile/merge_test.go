package secretfile

import (
	"errors"
	"testing"

	"github.com/jonwraymond/configsecret/value"
)

func obj(kv ...any) value.Value {
	m := make(map[string]value.Value, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1].(value.Value)
	}
	return value.Map(m)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		tree     value.Value
		path     Path
		incoming value.Value
		want     value.Value
	}{
		{
			name:     "root merge",
			tree:     obj("a", value.Int(1)),
			path:     nil,
			incoming: obj("b", value.Int(2)),
			want:     obj("a", value.Int(1), "b", value.Int(2)),
		},
		{
			name:     "root null is a no-op",
			tree:     obj("a", value.Int(1)),
			incoming: value.Null(),
			want:     obj("a", value.Int(1)),
		},
		{
			name:     "creates intermediate maps",
			tree:     value.EmptyMap(),
			path:     Path{"redis", "auth"},
			incoming: obj("password", value.String("x")),
			want:     obj("redis", obj("auth", obj("password", value.String("x")))),
		},
		{
			name:     "preserves siblings",
			tree:     obj("a", obj("c", value.Int(1))),
			path:     Path{"a", "b"},
			incoming: value.String("deep"),
			want:     obj("a", obj("c", value.Int(1), "b", value.String("deep"))),
		},
		{
			name:     "merges maps at final segment",
			tree:     obj("a", obj("b", obj("x", value.Int(1)))),
			path:     Path{"a"},
			incoming: obj("c", value.Int(2)),
			want:     obj("a", obj("b", obj("x", value.Int(1)), "c", value.Int(2))),
		},
		{
			name:     "scalar replaces map at final segment",
			tree:     obj("a", obj("b", value.Int(1))),
			path:     Path{"a"},
			incoming: value.String("flat"),
			want:     obj("a", value.String("flat")),
		},
		{
			name:     "null intermediate becomes map",
			tree:     obj("a", value.Null()),
			path:     Path{"a", "b"},
			incoming: value.Int(1),
			want:     obj("a", obj("b", value.Int(1))),
		},
		{
			name:     "sequence replaced wholesale",
			tree:     obj("a", obj("list", value.Seq(value.Int(1), value.Int(2)))),
			path:     Path{"a"},
			incoming: obj("list", value.Seq(value.Int(3))),
			want:     obj("a", obj("list", value.Seq(value.Int(3)))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.tree.String()
			got, err := Apply(tt.tree, tt.path, tt.incoming)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if !value.Equal(got, tt.want) {
				t.Fatalf("Apply() = %v, want %v", got, tt.want)
			}
			if tt.tree.String() != before {
				t.Fatalf("Apply() mutated its input: %s -> %s", before, tt.tree.String())
			}
		})
	}
}

func TestApply_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		tree     value.Value
		path     Path
		incoming value.Value
		wantKey  string
	}{
		{
			name:     "final segment holds string",
			tree:     obj("server", value.String("localhost")),
			path:     Path{"server"},
			incoming: obj("host", value.String("0.0.0.0")),
			wantKey:  "server",
		},
		{
			name:     "intermediate holds sequence",
			tree:     obj("a", value.Seq(value.Int(1))),
			path:     Path{"a", "b"},
			incoming: value.Int(1),
			wantKey:  "a",
		},
		{
			name:     "deep intermediate holds bool",
			tree:     obj("a", obj("b", value.Bool(true))),
			path:     Path{"a", "b", "c"},
			incoming: value.Int(1),
			wantKey:  "a.b",
		},
		{
			name:     "root document is not a map",
			tree:     value.EmptyMap(),
			incoming: value.String("hunter2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.tree, tt.path, tt.incoming)
			if !errors.Is(err, ErrMergeConflict) {
				t.Fatalf("expected ErrMergeConflict, got %v", err)
			}
			var e *Error
			if !errors.As(err, &e) || e.Key != tt.wantKey {
				t.Fatalf("expected conflict at %q, got %#v", tt.wantKey, err)
			}
		})
	}
}
