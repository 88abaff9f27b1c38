// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import "bytes"

// TreeNew creates a new tree rooted at an empty object.
func TreeNew() *Tree {
	return TreeFromObject(ObjectNew())
}

// TreeFromObject creates a tree rooted at the supplied object.
func TreeFromObject(obj *Object) *Tree {
	return TreeFromValue(ValueNew(obj))
}

// TreeFromValue creates a tree rooted at the supplied value. The root
// may be of any kind; only container roots are addressable by non-empty
// paths.
func TreeFromValue(v *Value) *Tree {
	return &Tree{root: v}
}

// TreeFrom creates a tree rooted at the value representation of the
// supplied native go data.
func TreeFrom(data interface{}) *Tree {
	return TreeFromValue(ValueNew(data))
}

// Tree wraps a root Value and provides path addressed operations on top
// of the container functionality. Trees are immutable and any mutation
// operation will return a new structurally shared copy of the tree with
// the changes made. This allows for cheap copies of the tree and for it
// to be shared easily.
type Tree struct {
	root *Value
}

// Root returns the tree's root Value.
func (t *Tree) Root() *Value {
	return t.root
}

// Merge merges trees together left to right by recursively calling
// Merge on the roots.
func (t *Tree) Merge(others ...*Tree) *Tree {
	root := t.Root()
	for _, other := range others {
		root = root.Merge(other.Root())
	}
	return TreeFromValue(root)
}

// Length returns the number of nodes in the tree.
func (t *Tree) Length() int {
	var count int
	t.Range(func(*Value) {
		count++
	})
	return count
}

// Range iterates over the tree's paths. Range can take a set of
// functions matched by type. If the function returns a bool this is
// treated as a loop termination variable, if false the loop will
// terminate.
//
//     func(*Path, *Value) iterates over paths and values.
//     func(*Path, *Value) bool
//     func(string, *Value) iterates over path literals and values.
//     func(string, *Value) bool
//     func(*Path) iterates over only the paths
//     func(*Path) bool
//     func(string) iterates over only the path literals
//     func(string) bool
//     func(*Value) iterates over only the values
//     func(*Value) bool
//
// Objects, PairLists, and TaggedObjects are descended into with their
// keys pushed onto the path; TaggedObjects are transparent, matching
// the addressing rules. Arrays are visited as leaves because paths
// address their elements by content, not position.
func (t *Tree) Range(fn interface{}) *Tree {
	rangeFn := genTreeRangeFunc(fn)
	var recur func(*Path, *Value) bool
	recur = func(path *Path, elem *Value) bool {
		if !rangeFn(path, elem) {
			return false
		}
		switch v := elem.ToInterface().(type) {
		case *Object:
			cont := true
			v.Range(func(key string, child *Value) bool {
				cont = recur(path.push(Key(key)), child)
				return cont
			})
			return cont
		case *TaggedObject:
			return rangePairs(path, v.Pairs(), recur)
		case *PairList:
			return rangePairs(path, v, recur)
		default:
			return true
		}
	}
	switch v := t.root.ToInterface().(type) {
	case *Object:
		v.Range(func(key string, child *Value) bool {
			return recur(PathOf(Key(key)), child)
		})
	case *TaggedObject:
		rangePairs(&Path{}, v.Pairs(), recur)
	case *PairList:
		rangePairs(&Path{}, v, recur)
	default:
		rangeFn(&Path{}, t.root)
	}
	return t
}

func rangePairs(path *Path, pairs *PairList,
	recur func(*Path, *Value) bool) bool {
	cont := true
	pairs.Range(func(pair Pair) bool {
		cont = recur(path.push(pair.Key()), pair.Value())
		return cont
	})
	return cont
}

func genTreeRangeFunc(fn interface{}) func(path *Path, v *Value) bool {
	switch f := fn.(type) {
	case func(*Path, *Value) bool:
		return f
	case func(*Path, *Value):
		return func(path *Path, value *Value) bool {
			f(path, value)
			return true
		}
	case func(string, *Value) bool:
		return func(path *Path, value *Value) bool {
			return f(path.String(), value)
		}
	case func(string, *Value):
		return func(path *Path, value *Value) bool {
			f(path.String(), value)
			return true
		}
	case func(*Value) bool:
		return func(_ *Path, value *Value) bool {
			return f(value)
		}
	case func(*Value):
		return func(_ *Path, value *Value) bool {
			f(value)
			return true
		}
	case func(*Path) bool:
		return func(path *Path, _ *Value) bool {
			return f(path)
		}
	case func(*Path):
		return func(path *Path, _ *Value) bool {
			f(path)
			return true
		}
	case func(string) bool:
		return func(path *Path, _ *Value) bool {
			return f(path.String())
		}
	case func(string):
		return func(path *Path, _ *Value) bool {
			f(path.String())
			return true
		}
	default:
		panic("invalid range function")
	}
}

// Equal implements equality for the tree. It compares the roots for
// equality.
func (t *Tree) Equal(other interface{}) bool {
	ot, isTree := other.(*Tree)
	if !isTree {
		return false
	}
	return equal(t.Root(), ot.Root())
}

// String returns a string representation of the tree.
func (t *Tree) String() string {
	var buf bytes.Buffer
	t.root.render(&buf)
	return buf.String()
}
