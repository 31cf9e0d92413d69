package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// FromAny converts decoder output into a Value.
//
// Supported inputs are nil, bool, every integer and float kind, string,
// []byte, json.Number, time.Time, fmt.Stringer map keys, and slices, arrays
// and maps built from those. Unsigned integers that overflow int64 become
// Float. Anything else fails with ErrUnsupported.
func FromAny(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case int:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: json number %q", ErrUnsupported, x.String())
		}
		return Float(f), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case map[string]any:
		out := make(map[string]Value, len(x))
		for k, child := range x {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = cv
		}
		return Value{kind: KindMap, m: out}, nil
	case []any:
		out := make([]Value, len(x))
		for i, child := range x {
			cv, err := FromAny(child)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = cv
		}
		return Value{kind: KindSeq, seq: out}, nil
	}
	return fromReflect(reflect.ValueOf(in))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Seq(), nil
		}
		out := make([]Value, rv.Len())
		for i := range out {
			cv, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = cv
		}
		return Value{kind: KindSeq, seq: out}, nil
	case reflect.Map:
		out := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := mapKey(iter.Key())
			cv, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = cv
		}
		return Value{kind: KindMap, m: out}, nil
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

func mapKey(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// Any converts v into plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Any()
		}
		return out
	case KindMap:
		return v.AnyMap()
	default:
		return nil
	}
}

// AnyMap converts a Map into map[string]any. Non-Map values yield an empty
// map.
func (v Value) AnyMap() map[string]any {
	out := make(map[string]any, len(v.m))
	if v.kind != KindMap {
		return out
	}
	for k, child := range v.m {
		out[k] = child.Any()
	}
	return out
}
