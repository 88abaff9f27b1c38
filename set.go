// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

// Assoc associates the value with the location the path addresses and
// returns a new tree, rebuilding every container on the spine from the
// root to the target while preserving each container's kind and the
// order of untouched siblings. The empty path replaces the whole tree.
//
// Missing Object keys auto-create the entire missing subtree as nested
// Objects. A PairList that is exhausted without a match grows by
// exactly one fresh pair keyed by the unresolved segment. Arrays never
// auto-create: an unmatched filter, a plain key against an array, a
// filter against an object, or any attempt to descend through a scalar
// fails with an IncompatiblePathError carrying the full path. On
// failure the input tree is unchanged and no partial result is
// returned.
func (t *Tree) Assoc(path interface{}, value interface{}) (*Tree, error) {
	p := pathOf(path)
	out, err := assoc(p, ValueNew(value), t.root, p)
	if err != nil {
		return nil, err
	}
	return TreeFromValue(out), nil
}

// Delete removes the value the path addresses and returns a new tree.
// It shares the spine walk with Assoc but never creates structure: a
// missing key or unmatched filter anywhere along the path fails with a
// KeyNotFoundError, kind mismatches fail with an IncompatiblePathError,
// both carrying the full path. The empty path cannot be deleted.
func (t *Tree) Delete(path interface{}) (*Tree, error) {
	p := pathOf(path)
	out, err := del(p, t.root, p)
	if err != nil {
		return nil, err
	}
	return TreeFromValue(out), nil
}

func assoc(path *Path, newVal, val *Value, full *Path) (*Value, error) {
	if path.isEmpty() {
		return newVal, nil
	}
	if val == nil {
		return nil, incompatiblePath(full)
	}
	seg, rest := path.head(), path.rest()
	switch v := val.ToInterface().(type) {
	case *TaggedObject:
		return v.through(func(inner *Value) (*Value, error) {
			return assoc(path, newVal, inner, full)
		})
	case *Object:
		if seg.IsFilter() {
			return nil, incompatiblePath(full)
		}
		if rest.isEmpty() {
			return ValueNew(v.Assoc(seg.Key(), newVal)), nil
		}
		child, found := v.Find(seg.Key())
		if !found {
			// Objects are the only kind with unbounded
			// auto-creation of intermediate structure.
			child = ValueNew(ObjectNew())
		}
		out, err := assoc(rest, newVal, child, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.Assoc(seg.Key(), out)), nil
	case *PairList:
		idx, found := v.findSegment(seg)
		if !found {
			// The sole way pair lists grow: append exactly one
			// fresh pair keyed by the unresolved segment. The
			// segment is stored verbatim, even when it is a
			// field filter.
			out, err := assoc(rest, newVal,
				ValueNew(PairListNew()), full)
			if err != nil {
				return nil, err
			}
			return ValueNew(v.Append(PairWith(seg, out))), nil
		}
		pair := v.pairAt(idx)
		if rest.isEmpty() {
			return ValueNew(v.assocAt(idx,
				PairWith(pair.key, newVal))), nil
		}
		out, err := assoc(rest, newVal, pair.value, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.assocAt(idx, PairWith(pair.key, out))), nil
	case *Array:
		if !seg.IsFilter() {
			return nil, incompatiblePath(full)
		}
		idx, elem, found := v.match(seg)
		if !found {
			return nil, incompatiblePath(full)
		}
		if rest.isEmpty() {
			// Replace the whole matched element; its
			// identifying field goes with it.
			return ValueNew(v.Assoc(idx, newVal)), nil
		}
		out, err := assoc(rest, newVal, elem, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.Assoc(idx, out)), nil
	default:
		return nil, incompatiblePath(full)
	}
}

func del(path *Path, val *Value, full *Path) (*Value, error) {
	if path.isEmpty() {
		return nil, incompatiblePath(full)
	}
	if val == nil {
		return nil, incompatiblePath(full)
	}
	seg, rest := path.head(), path.rest()
	switch v := val.ToInterface().(type) {
	case *TaggedObject:
		return v.through(func(inner *Value) (*Value, error) {
			return del(path, inner, full)
		})
	case *Object:
		if seg.IsFilter() {
			return nil, incompatiblePath(full)
		}
		child, found := v.Find(seg.Key())
		if !found {
			return nil, keyNotFound(full)
		}
		if rest.isEmpty() {
			return ValueNew(v.Delete(seg.Key())), nil
		}
		out, err := del(rest, child, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.Assoc(seg.Key(), out)), nil
	case *PairList:
		idx, found := v.findSegment(seg)
		if !found {
			return nil, keyNotFound(full)
		}
		if rest.isEmpty() {
			return ValueNew(v.deleteAt(idx)), nil
		}
		pair := v.pairAt(idx)
		out, err := del(rest, pair.value, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.assocAt(idx, PairWith(pair.key, out))), nil
	case *Array:
		if !seg.IsFilter() {
			return nil, incompatiblePath(full)
		}
		idx, elem, found := v.match(seg)
		if !found {
			return nil, keyNotFound(full)
		}
		if rest.isEmpty() {
			return ValueNew(v.Delete(idx)), nil
		}
		out, err := del(rest, elem, full)
		if err != nil {
			return nil, err
		}
		return ValueNew(v.Assoc(idx, out)), nil
	default:
		return nil, incompatiblePath(full)
	}
}
