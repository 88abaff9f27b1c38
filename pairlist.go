// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"bytes"

	"jsouthworth.net/go/immutable/vector"
)

// PairNew creates a new plain keyed pair.
func PairNew(key string, value interface{}) Pair {
	return Pair{key: Key(key), value: ValueNew(value)}
}

// PairWith creates a pair keyed by an arbitrary segment. Writes that
// extend a PairList with a filter segment produce pairs of this form.
func PairWith(key Segment, value interface{}) Pair {
	return Pair{key: key, value: ValueNew(value)}
}

// Pair is a single (key, value) member of a PairList or a member
// supplied to an Object constructor. Keys are full path segments so a
// pair created by filter segment auto-creation keeps the segment that
// produced it.
type Pair struct {
	key   Segment
	value *Value
}

// Key returns the key segment.
func (p Pair) Key() Segment { return p.key }

// Value returns the value.
func (p Pair) Value() *Value { return p.value }

// String returns a string representation of the Pair.
func (p Pair) String() string {
	var buf bytes.Buffer
	p.render(&buf)
	return buf.String()
}

func (p Pair) render(buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.WriteByte('"')
	buf.WriteString(p.key.String())
	buf.WriteByte('"')
	buf.WriteByte(',')
	p.value.render(buf)
	buf.WriteByte(']')
}

// Equal implements equality between Pairs.
func (p Pair) Equal(other interface{}) bool {
	op, isPair := other.(Pair)
	if !isPair {
		return false
	}
	return op.key.Equal(p.key) && equal(op.value, p.value)
}

// PairListNew creates a new empty pair list.
func PairListNew() *PairList {
	return &PairList{
		store: vector.Empty(),
	}
}

// PairListWith creates a pair list and initializes it with the provided
// pairs in order.
func PairListWith(pairs ...Pair) *PairList {
	store := vector.Empty()
	for _, pair := range pairs {
		store = store.Append(pair)
	}
	return &PairList{store: store}
}

// PairList is an ordered sequence of pairs. Keys may repeat; lookups
// return the first match and mutation preserves the relative order of
// every untouched pair. PairLists are immutable, the mutation methods
// return new structurally shared copies of the original.
type PairList struct {
	store *vector.Vector
}

// At returns the value of the first pair with the plain key, or nil if
// there is none.
func (l *PairList) At(key string) *Value {
	out, _ := l.Find(key)
	return out
}

// Find returns the value of the first pair with the plain key and
// whether such a pair exists.
func (l *PairList) Find(key string) (*Value, bool) {
	idx, found := l.findSegment(Key(key))
	if !found {
		return nil, false
	}
	return l.pairAt(idx).value, true
}

// Contains returns whether a pair with the plain key exists.
func (l *PairList) Contains(key string) bool {
	_, found := l.findSegment(Key(key))
	return found
}

// findSegment returns the index of the first pair whose key segment
// equals seg.
func (l *PairList) findSegment(seg Segment) (int, bool) {
	idx := -1
	l.store.Range(func(i int, p Pair) bool {
		if p.key.Equal(seg) {
			idx = i
			return false
		}
		return true
	})
	return idx, idx >= 0
}

func (l *PairList) pairAt(i int) Pair {
	return l.store.At(i).(Pair)
}

// Append adds a pair to the end of the list.
func (l *PairList) Append(pair Pair) *PairList {
	return &PairList{store: l.store.Append(pair)}
}

func (l *PairList) assocAt(i int, pair Pair) *PairList {
	return &PairList{store: l.store.Assoc(i, pair)}
}

func (l *PairList) deleteAt(i int) *PairList {
	return &PairList{store: l.store.Delete(i)}
}

// Length returns the number of pairs in the list.
func (l *PairList) Length() int {
	return l.store.Length()
}

// Range iterates over the list's pairs in order. Range can take a set
// of functions matched by type. If the function returns a bool this is
// treated as a loop termination variable, if false the loop will
// terminate.
//
//     func(Pair) iterates over pairs
//     func(Pair) bool
//     func(Segment, *Value) iterates over key segments and values.
//     func(Segment, *Value) bool
//     func(*Value) iterates over only the values
//     func(*Value) bool
func (l *PairList) Range(fn interface{}) *PairList {
	switch f := fn.(type) {
	case func(Pair):
		fn = func(_ int, p Pair) bool {
			f(p)
			return true
		}
	case func(Pair) bool:
		fn = func(_ int, p Pair) bool {
			return f(p)
		}
	case func(Segment, *Value):
		fn = func(_ int, p Pair) bool {
			f(p.key, p.value)
			return true
		}
	case func(Segment, *Value) bool:
		fn = func(_ int, p Pair) bool {
			return f(p.key, p.value)
		}
	case func(*Value):
		fn = func(_ int, p Pair) bool {
			f(p.value)
			return true
		}
	case func(*Value) bool:
		fn = func(_ int, p Pair) bool {
			return f(p.value)
		}
	default:
		panic("invalid range function")
	}
	l.store.Range(fn)
	return l
}

// toNative returns the list as a []interface{} of two element
// [key, value] slices.
func (l *PairList) toNative() interface{} {
	out := make([]interface{}, 0, l.Length())
	l.Range(func(p Pair) {
		out = append(out, []interface{}{
			p.key.String(), p.value.ToNative(),
		})
	})
	return out
}

// Equal implements equality for pair lists. A pair list is equal to
// another pair list if they hold equal pairs in the same order.
func (l *PairList) Equal(other interface{}) bool {
	ol, isPairList := other.(*PairList)
	return isPairList &&
		ol.store.Length() == l.store.Length() &&
		equal(ol.store, l.store)
}

// String returns a string representation of the PairList.
func (l *PairList) String() string {
	var buf bytes.Buffer
	l.render(&buf)
	return buf.String()
}

func (l *PairList) render(buf *bytes.Buffer) {
	buf.WriteByte('[')
	l.Range(func(p Pair) bool {
		p.render(buf)
		buf.WriteByte(',')
		return true
	})
	out := buf.Bytes()
	if out[len(out)-1] == ',' {
		buf.Truncate(len(out) - 1)
	}
	buf.WriteByte(']')
}
