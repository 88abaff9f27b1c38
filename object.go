// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"bytes"

	"jsouthworth.net/go/immutable/hashmap"
)

// ObjectNew creates a new object.
func ObjectNew() *Object {
	return &Object{
		store: hashmap.Empty(),
	}
}

// ObjectWith creates a new object and then populates it with the
// supplied pairs. The pairs must be plain keyed; ObjectWith panics on a
// filter keyed pair.
func ObjectWith(pairs ...Pair) *Object {
	return ObjectNew().with(pairs...)
}

// ObjectFrom creates a new object and then populates it with the data
// from the supplied map.
func ObjectFrom(in map[string]interface{}) *Object {
	return ObjectNew().from(in)
}

// Object is an unordered key-unique mapping from strings to Values.
// Objects are immutable, the mutation methods return a structurally
// shared copy of the object with the required changes. This provides
// cheap copies of the object and preserves the original allowing it to
// be easily shared.
type Object struct {
	store *hashmap.Map
}

// from converts a native go map to an Object.
func (obj *Object) from(in map[string]interface{}) *Object {
	out := obj.copy()
	out.store = out.store.Transform(
		func(store *hashmap.TMap) *hashmap.TMap {
			for k, v := range in {
				store = store.Assoc(k, ValueNew(v))
			}
			return store
		})
	return out
}

// with allows one to build an object from a list of Pairs. This provides
// a declarative mechanism for producing an object.
func (obj *Object) with(pairs ...Pair) *Object {
	out := obj.copy()
	out.store = out.store.Transform(
		func(store *hashmap.TMap) *hashmap.TMap {
			for _, pair := range pairs {
				if pair.key.IsFilter() {
					panic("object keys must be plain")
				}
				store = store.Assoc(pair.key.Key(), pair.value)
			}
			return store
		})
	return out
}

// Range iterates over the object's members. Range can take a set of functions
// matched by type. If the function returns a bool this is treated as a
// loop termination variable, if false the loop will terminate.
//
//     func(Pair) iterates over Pairs
//     func(Pair) bool, called with a Pair, terminates the loop on false.
//     func(string, *Value) iterates over keys and values.
//     func(string, *Value) bool
//     func(string) iterates over only the keys
//     func(string) bool
//     func(*Value) iterates over only the values
//     func(*Value) bool
func (obj *Object) Range(fn interface{}) *Object {
	switch f := fn.(type) {
	case func(Pair):
		fn = func(e hashmap.Entry) bool {
			f(PairNew(e.Key().(string), e.Value()))
			return true
		}
	case func(Pair) bool:
		fn = func(e hashmap.Entry) bool {
			return f(PairNew(e.Key().(string), e.Value()))
		}
	case func(string, *Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string), e.Value().(*Value))
			return true
		}
	case func(string, *Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string), e.Value().(*Value))
		}
	case func(*Value):
		fn = func(e hashmap.Entry) bool {
			f(e.Value().(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Value().(*Value))
		}
	case func(string):
		fn = func(e hashmap.Entry) bool {
			f(e.Key().(string))
			return true
		}
	case func(string) bool:
		fn = func(e hashmap.Entry) bool {
			return f(e.Key().(string))
		}
	default:
		panic("invalid range function")
	}
	obj.store.Range(fn)
	return obj
}

// At returns the Value at the key's location or nil if it doesn't exist.
func (obj *Object) At(key string) *Value {
	out, ok := obj.store.Find(key)
	if !ok {
		return nil
	}
	return out.(*Value)
}

// Contains returns true if the key exists in the object.
func (obj *Object) Contains(key string) bool {
	return obj.store.Contains(key)
}

// Find returns the value at the key or nil if it doesn't exist and
// whether the key was in the object.
func (obj *Object) Find(key string) (*Value, bool) {
	out, ok := obj.store.Find(key)
	if !ok {
		return nil, ok
	}
	return out.(*Value), ok
}

// Assoc associates a new value with the key. Existing keys are
// overwritten in place, never duplicated.
func (obj *Object) Assoc(key string, value interface{}) *Object {
	new := obj.store.Assoc(key, ValueNew(value))
	if new == obj.store {
		return obj
	}
	return &Object{store: new}
}

// Length returns the number of members in the object.
func (obj *Object) Length() int {
	return obj.store.Length()
}

// Delete removes a key from the object.
func (obj *Object) Delete(key string) *Object {
	new := obj.store.Delete(key)
	if new == obj.store {
		return obj
	}
	return &Object{store: new}
}

// toNative produces a go native map[string]interface{} from the object.
func (obj *Object) toNative() interface{} {
	out := make(map[string]interface{})
	obj.Range(func(key string, val *Value) {
		out[key] = val.ToNative()
	})
	return out
}

func (obj *Object) copy() *Object {
	return &Object{
		store: obj.store,
	}
}

// Merge combines two objects key by key. For every key in new: missing
// keys are inserted, two objects merge recursively, an object held by
// the accumulator is kept as-is when the incoming value is not an
// object, and any other held value is overwritten by the incoming one.
func (obj *Object) Merge(new *Object) *Object {
	return obj.merge(ValueNew(new)).AsObject()
}

// Merge folds a sequence of objects left to right into a single object
// using the per-key rules of (*Object).Merge. Nil objects are skipped.
func Merge(objects ...*Object) *Object {
	out := ObjectNew()
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		out = out.Merge(obj)
	}
	return out
}

// merge implements the object half of (*Value).Merge.
func (obj *Object) merge(new *Value) *Value {
	return new.Perform(func(n *Object) *Value {
		out := obj.copy()
		out.store = out.store.Transform(
			func(store *hashmap.TMap) *hashmap.TMap {
				n.Range(func(key string, val *Value) {
					old, found := obj.Find(key)
					if found {
						val = old.Merge(val)
					}
					store = store.Assoc(key, val)
				})
				return store
			})
		return ValueNew(out)
	}, func(_ interface{}) *Value {
		// Objects are never collapsed back to a scalar by a
		// later source.
		return ValueNew(obj)
	}).(*Value)
}

// Equal implements equality for objects. An object is equal to another
// object if all their keys contain equal values. Equality checks are
// linear with respect to the number of keys.
func (obj *Object) Equal(other interface{}) bool {
	oo, isObject := other.(*Object)
	return isObject &&
		oo.store.Length() == obj.store.Length() &&
		equal(oo.store, obj.store)
}

// String returns a string representation of the Object.
func (obj *Object) String() string {
	var buf bytes.Buffer
	obj.render(&buf)
	return buf.String()
}

func (obj *Object) render(buf *bytes.Buffer) {
	buf.WriteByte('{')
	var n int
	obj.Range(func(key string, val *Value) {
		buf.WriteByte('"')
		buf.WriteString(key)
		buf.WriteByte('"')
		buf.WriteByte(':')
		val.render(buf)
		if n < obj.Length()-1 {
			buf.WriteByte(',')
		}
		n = n + 1
	})
	buf.WriteByte('}')
}
