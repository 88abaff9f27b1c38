// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"bytes"
	"reflect"
	"sort"

	"jsouthworth.net/go/immutable/vector"
)

// ArrayNew creates a new empty array.
func ArrayNew() *Array {
	return &Array{
		store: vector.Empty(),
	}
}

// ArrayWith creates an array and initializes it with the provided
// elements.
func ArrayWith(elements ...interface{}) *Array {
	return ArrayNew().from(elements)
}

// ArrayFrom creates an array and initializes it with the elements from
// the provided slice.
func ArrayFrom(in interface{}) *Array {
	return ArrayNew().from(in)
}

// Array is an ordered sequence of Values. Paths address arrays only
// through field filters, elements that do not match an applied filter
// pass through mutations unchanged and in their original order. Arrays
// are immutable, the mutation methods return new structurally shared
// copies of the original.
type Array struct {
	store *vector.Vector
}

// from converts a go slice to an Array.
func (arr *Array) from(ins interface{}) *Array {
	val := reflect.ValueOf(ins)
	vals := make([]*Value, val.Len())
	for i := 0; i < val.Len(); i++ {
		vals[i] = ValueNew(val.Index(i).Interface())
	}
	return &Array{store: vector.From(vals)}
}

// At returns the value at the index of the array, if the index is out
// of bounds, nil is returned.
func (arr *Array) At(index int) *Value {
	if index >= arr.store.Length() || index < 0 {
		return nil
	}
	return arr.store.At(index).(*Value)
}

// Contains returns whether the index is in the bounds of the array.
func (arr *Array) Contains(index int) bool {
	return index < arr.store.Length() && index >= 0
}

// Find returns the value at the index or nil if it doesn't exist and
// whether the index was in the array.
func (arr *Array) Find(index int) (*Value, bool) {
	v, ok := arr.store.Find(index)
	if !ok {
		return nil, ok
	}
	return v.(*Value), ok
}

// Assoc associates the value with the index in the array. If the
// index is out of bounds the array is padded to that index and the
// value is associated.
func (arr *Array) Assoc(index int, value interface{}) *Array {
	newStore := arr.store
	for i := arr.Length(); i < index+1; i++ {
		newStore = newStore.Append(ValueNew(nil))
	}
	newStore = newStore.Assoc(index, ValueNew(value))
	return &Array{store: newStore}
}

// Length returns the number of elements in the array.
func (arr *Array) Length() int {
	return arr.store.Length()
}

// Append adds a new value to the end of the array.
func (arr *Array) Append(value interface{}) *Array {
	return &Array{store: arr.store.Append(ValueNew(value))}
}

// Delete removes the element at the supplied index from the array.
func (arr *Array) Delete(index int) *Array {
	return &Array{store: arr.store.Delete(index)}
}

// match returns the index and value of the first element matched by the
// filter segment. Only Object and TaggedObject elements can match; any
// other element kind is a non-match, not an error.
func (arr *Array) match(seg Segment) (int, *Value, bool) {
	idx := -1
	var out *Value
	arr.store.Range(func(i int, v *Value) bool {
		if elementMatches(v, seg) {
			idx, out = i, v
			return false
		}
		return true
	})
	return idx, out, idx >= 0
}

func elementMatches(elem *Value, seg Segment) bool {
	switch e := elem.ToInterface().(type) {
	case *Object:
		field, found := e.Find(seg.Key())
		return found && field.Equal(seg.FilterValue())
	case *TaggedObject:
		field, found := e.Pairs().Find(seg.Key())
		return found && field.Equal(seg.FilterValue())
	default:
		return false
	}
}

// Range iterates over the array's elements. Range can take a set of functions
// matched by type. If the function returns a bool this is treated as a
// loop termination variable, if false the loop will terminate.
//
//     func(int, *Value) iterates over indices and values.
//     func(int, *Value) bool
//     func(int) iterates over only the indices
//     func(int) bool
//     func(*Value) iterates over only the values
//     func(*Value) bool
func (arr *Array) Range(fn interface{}) *Array {
	switch f := fn.(type) {
	case func(int, *Value):
	case func(int, *Value) bool:
	case func(*Value):
		fn = func(idx int, val interface{}) bool {
			f(val.(*Value))
			return true
		}
	case func(*Value) bool:
		fn = func(idx int, val interface{}) bool {
			return f(val.(*Value))
		}
	case func(int):
		fn = func(idx int, val interface{}) bool {
			f(idx)
			return true
		}
	case func(int) bool:
		fn = func(idx int, val interface{}) bool {
			return f(idx)
		}
	default:
		panic("invalid range function")
	}
	arr.store.Range(fn)
	return arr
}

// toNative returns a go native []interface{} from the array.
func (arr *Array) toNative() interface{} {
	out := make([]interface{}, arr.Length())
	arr.Range(func(idx int, value *Value) {
		out[idx] = value.ToNative()
	})
	return out
}

// Sort sorts an array returning a new array that is sorted.
// By default sort will use dyn.Compare as the comparison operator,
// this may be overridden using the Compare option.
func (arr *Array) Sort(options ...SortOption) *Array {
	var opts sortOpts
	opts.compare = func(v1, v2 *Value) int {
		return v1.Compare(v2)
	}
	for _, opt := range options {
		opt(&opts)
	}
	sorter := arraySorter{
		array: arr.store.AsTransient(),
		opts:  &opts,
	}
	sort.Sort(&sorter)
	return &Array{store: sorter.array.AsPersistent()}
}

type arraySorter struct {
	array *vector.TVector
	opts  *sortOpts
}

func (s *arraySorter) Len() int {
	return s.array.Length()
}

func (s *arraySorter) Less(i, j int) bool {
	return s.opts.compare(s.array.At(i).(*Value),
		s.array.At(j).(*Value)) < 0
}

func (s *arraySorter) Swap(i, j int) {
	a, b := s.array.At(i), s.array.At(j)
	s.array.Assoc(i, b)
	s.array.Assoc(j, a)
}

type sortOpts struct {
	compare func(v1, v2 *Value) int
}

// SortOption is an option to the Array.Sort function.
type SortOption func(*sortOpts)

// Compare takes a comparison function and returns a sort option.
// A compare function takes two values and returns a trinary state as
// an integer. Less than zero indicates the first was less than the last,
// zero indicates the two values were equal, and greater than zero
// indicates that the first was greater than the last.
func Compare(fn func(a, b *Value) int) SortOption {
	return func(opts *sortOpts) {
		opts.compare = fn
	}
}

// Equal implements equality for arrays. An array is equal to another
// array if all their values at each index are equal. Equality checks are
// linear with respect to the number of elements.
func (arr *Array) Equal(other interface{}) bool {
	oa, isArray := other.(*Array)
	return isArray &&
		oa.store.Length() == arr.store.Length() &&
		equal(oa.store, arr.store)
}

// String returns a string representation of the Array.
func (arr *Array) String() string {
	var buf bytes.Buffer
	arr.render(&buf)
	return buf.String()
}

func (arr *Array) render(buf *bytes.Buffer) {
	buf.WriteByte('[')
	arr.Range(func(i int, v *Value) {
		v.render(buf)
		if i < arr.Length()-1 {
			buf.WriteByte(',')
		}
	})
	buf.WriteByte(']')
}
