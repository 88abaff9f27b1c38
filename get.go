// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

// At returns the Value the path addresses, or nil if the path does not
// resolve. An optional default may be supplied that is returned instead
// of nil. At never fails; unsupported segment and container kind
// combinations are simply not found.
func (t *Tree) At(path interface{}, defaultVal ...interface{}) *Value {
	out, found := t.Find(path)
	if found {
		return out
	}
	if len(defaultVal) != 0 {
		return ValueNew(defaultVal[0])
	}
	return nil
}

// Find returns the Value the path addresses, or nil if none, and
// whether the value is in the tree.
func (t *Tree) Find(path interface{}) (*Value, bool) {
	return find(pathOf(path), t.root)
}

// Fetch returns the Value the path addresses. If any segment cannot be
// resolved it returns a KeyNotFoundError carrying the full path as
// supplied by the caller.
func (t *Tree) Fetch(path interface{}) (*Value, error) {
	p := pathOf(path)
	out, found := find(p, t.root)
	if !found {
		return nil, keyNotFound(p)
	}
	return out, nil
}

// Contains returns whether the path addresses a value in the tree.
func (t *Tree) Contains(path interface{}) bool {
	_, found := t.Find(path)
	return found
}

// find is the single recursive descent shared by the read operations.
// It consumes one path segment per level, except for TaggedObjects
// which are unwrapped with the path intact.
func find(path *Path, val *Value) (*Value, bool) {
	if path.isEmpty() {
		return val, true
	}
	if val == nil {
		return nil, false
	}
	seg := path.head()
	switch v := val.ToInterface().(type) {
	case *TaggedObject:
		return find(path, ValueNew(v.Pairs()))
	case *Object:
		if seg.IsFilter() {
			return nil, false
		}
		child, found := v.Find(seg.Key())
		if !found {
			return nil, false
		}
		return find(path.rest(), child)
	case *PairList:
		if seg.IsFilter() {
			return nil, false
		}
		child, found := v.Find(seg.Key())
		if !found {
			return nil, false
		}
		return find(path.rest(), child)
	case *Array:
		if !seg.IsFilter() {
			return nil, false
		}
		_, elem, found := v.match(seg)
		if !found {
			return nil, false
		}
		return find(path.rest(), elem)
	default:
		return nil, false
	}
}
