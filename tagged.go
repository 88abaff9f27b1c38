// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import "bytes"

// TaggedObjectNew wraps a pair list, marking it as an object rather
// than a generic list. The wrapper is transparent to addressing: a path
// segment addresses into the wrapped list exactly as it would a bare
// PairList, and mutation re-applies the wrapper around the rebuilt
// list. A nil list is replaced with an empty one, a TaggedObject always
// holds exactly one PairList.
func TaggedObjectNew(pairs *PairList) *TaggedObject {
	if pairs == nil {
		pairs = PairListNew()
	}
	return &TaggedObject{pairs: pairs}
}

// TaggedObjectWith creates a tagged object holding the supplied pairs
// in order.
func TaggedObjectWith(pairs ...Pair) *TaggedObject {
	return TaggedObjectNew(PairListWith(pairs...))
}

// TaggedObject is a single element wrapper holding a PairList that
// denotes an object rather than a generic list.
type TaggedObject struct {
	pairs *PairList
}

// Pairs returns the wrapped pair list.
func (t *TaggedObject) Pairs() *PairList {
	return t.pairs
}

// through unwraps the tagged object, applies fn to the wrapped list,
// and re-applies the wrapper around the result. It is the single
// unwrap/operate/rewrap combinator used by the traversal engines.
func (t *TaggedObject) through(fn func(*Value) (*Value, error)) (*Value, error) {
	out, err := fn(ValueNew(t.pairs))
	if err != nil {
		return nil, err
	}
	return ValueNew(TaggedObjectNew(out.AsPairList())), nil
}

// toNative returns the wrapped list's native form.
func (t *TaggedObject) toNative() interface{} {
	return t.pairs.toNative()
}

// Equal implements equality for tagged objects, two tagged objects are
// equal when their wrapped lists are equal.
func (t *TaggedObject) Equal(other interface{}) bool {
	ot, isTagged := other.(*TaggedObject)
	return isTagged && t.pairs.Equal(ot.pairs)
}

// String returns a string representation of the TaggedObject.
func (t *TaggedObject) String() string {
	var buf bytes.Buffer
	t.render(&buf)
	return buf.String()
}

func (t *TaggedObject) render(buf *bytes.Buffer) {
	buf.WriteByte('{')
	t.pairs.render(buf)
	buf.WriteByte('}')
}
