package state

import (
	"maps"
	"slices"
)

// Value is a StateTree value: nil, bool, int64, float64, string, List or
// *Object. The union is closed; Normalize is the only way other Go values
// enter a tree.
type Value = any

// List is an ordered sequence of values.
type List = []Value

// Object is an insertion-ordered string map. The zero value is not usable;
// construct with NewObject.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty ordered map.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key, appending the key if it is new.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Range calls fn for each key/value pair in insertion order until fn
// returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy sharing no substructure with o.
func (o *Object) Clone() *Object {
	res := &Object{
		keys:   slices.Clone(o.keys),
		values: make(map[string]Value, len(o.keys)),
	}
	for k, v := range o.values {
		res.values[k] = Clone(v)
	}
	return res
}

// Clone deep-copies a normalized value. Scalars are returned as-is; Lists
// and Objects are copied recursively so the result shares no mutable
// substructure with the input.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case List:
		res := make(List, len(t))
		for i, e := range t {
			res[i] = Clone(e)
		}
		return res
	default:
		return v
	}
}

// Normalize converts arbitrary Go input into the closed Value union,
// deep-copying containers and recursively dropping guarded prototype keys.
// Plain maps have no usable order, so their keys are sorted; pass an *Object
// to control ordering. Anything outside the union fails with
// *UnsupportedTypeError.
func Normalize(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case *Object:
		return normalizeObject(t)
	case map[string]any:
		return normalizeMap(t)
	case []any:
		// covers List, which is an alias
		return normalizeSlice(t)
	case []string:
		res := make(List, len(t))
		for i, e := range t {
			res[i] = e
		}
		return res, nil
	default:
		return nil, &UnsupportedTypeError{Value: v}
	}
}

func normalizeObject(o *Object) (*Object, error) {
	res := NewObject()
	for _, k := range o.keys {
		if isForbiddenKey(k) {
			continue
		}
		nv, err := Normalize(o.values[k])
		if err != nil {
			return nil, err
		}
		res.Set(k, nv)
	}
	return res, nil
}

func normalizeMap(m map[string]any) (*Object, error) {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if isForbiddenKey(k) {
			continue
		}
		nv, err := Normalize(m[k])
		if err != nil {
			return nil, err
		}
		res.Set(k, nv)
	}
	return res, nil
}

func normalizeSlice(s []any) (List, error) {
	res := make(List, len(s))
	for i, e := range s {
		nv, err := Normalize(e)
		if err != nil {
			return nil, err
		}
		res[i] = nv
	}
	return res, nil
}

// ToGo converts a normalized value back into plain Go data: Objects become
// map[string]any (insertion order is lost) and Lists become []any. Useful at
// boundaries that expect ordinary JSON-shaped values, such as expression
// environments.
func ToGo(v Value) any {
	switch t := v.(type) {
	case *Object:
		res := make(map[string]any, t.Len())
		for _, k := range t.keys {
			res[k] = ToGo(t.values[k])
		}
		return res
	case List:
		res := make([]any, len(t))
		for i, e := range t {
			res[i] = ToGo(e)
		}
		return res
	default:
		return v
	}
}

// Equal reports structural equality of two normalized values. Objects
// compare by key set and per-key values regardless of insertion order;
// int64 and float64 compare numerically.
func Equal(a, b Value) bool {
	switch at := a.(type) {
	case nil:
		return b == nil
	case bool:
		bt, ok := b.(bool)
		return ok && at == bt
	case string:
		bt, ok := b.(string)
		return ok && at == bt
	case int64:
		switch bt := b.(type) {
		case int64:
			return at == bt
		case float64:
			return float64(at) == bt
		}
		return false
	case float64:
		switch bt := b.(type) {
		case int64:
			return at == float64(bt)
		case float64:
			return at == bt
		}
		return false
	case List:
		bt, ok := b.(List)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case *Object:
		bt, ok := b.(*Object)
		if !ok || at.Len() != bt.Len() {
			return false
		}
		for _, k := range at.keys {
			bv, ok := bt.values[k]
			if !ok || !Equal(at.values[k], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
