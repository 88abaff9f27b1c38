// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeConstructors(t *testing.T) {
	t.Run("empty tree has an object root", func(t *testing.T) {
		assert.True(t, TreeNew().Root().IsObject())
		assert.Equal(t, 0, TreeNew().Length())
	})
	t.Run("from native data", func(t *testing.T) {
		tree := TreeFrom(map[string]interface{}{"a": 1})
		assert.Equal(t, int64(1), tree.At("/a", -1).AsInt())
	})
	t.Run("scalar root", func(t *testing.T) {
		tree := TreeFrom("just a string")
		got, found := tree.Find("/")
		require.True(t, found)
		assert.Equal(t, "just a string", got.AsString())
		_, found = tree.Find("/a")
		assert.False(t, found)
	})
}

func TestTreeRange(t *testing.T) {
	tree := serverTree()
	t.Run("visits every addressable node", func(t *testing.T) {
		var paths []string
		tree.Range(func(path string) {
			paths = append(paths, path)
		})
		sort.Strings(paths)
		assert.Equal(t, []string{
			"/list", "/name", "/port",
			"/tls", "/tls/cert", "/tls/enabled",
		}, paths)
	})
	t.Run("arrays are leaves", func(t *testing.T) {
		tree.Range(func(path string, v *Value) {
			assert.NotContains(t, path, "value",
				"array elements must not be ranged into")
		})
	})
	t.Run("paths resolve to their values", func(t *testing.T) {
		tree.Range(func(path *Path, v *Value) {
			got, found := tree.Find(path)
			require.True(t, found, "range yielded unresolvable %s", path)
			assert.True(t, got.Equal(v))
		})
	})
	t.Run("early termination", func(t *testing.T) {
		var count int
		tree.Range(func(*Value) bool {
			count++
			return false
		})
		assert.Equal(t, 1, count)
	})
	t.Run("pair list keys preserve order", func(t *testing.T) {
		pl := TreeFromValue(ValueNew(PairListWith(
			PairNew("b", 1),
			PairNew("a", PairListWith(PairNew("c", 2))),
		)))
		var paths []string
		pl.Range(func(path string) {
			paths = append(paths, path)
		})
		assert.Equal(t, []string{"/b", "/a", "/a/c"}, paths)
	})
	t.Run("tagged objects are transparent", func(t *testing.T) {
		tagged := TreeFromValue(ValueNew(TaggedObjectWith(
			PairNew("a", TaggedObjectWith(PairNew("b", 1))),
		)))
		var paths []string
		tagged.Range(func(path string) {
			paths = append(paths, path)
		})
		assert.Equal(t, []string{"/a", "/a/b"}, paths)
	})
	t.Run("invalid range function panics", func(t *testing.T) {
		assert.Panics(t, func() {
			tree.Range(func(int) {})
		})
	})
}

func TestTreeLength(t *testing.T) {
	assert.Equal(t, 6, serverTree().Length())
	assert.Equal(t, 1, TreeFrom("scalar").Length())
}

func TestTreeEqual(t *testing.T) {
	t.Run("structural equality", func(t *testing.T) {
		assert.True(t, serverTree().Equal(serverTree()))
	})
	t.Run("differing values", func(t *testing.T) {
		other, err := serverTree().Assoc("/port", 9090)
		require.NoError(t, err)
		assert.False(t, serverTree().Equal(other))
	})
	t.Run("non trees", func(t *testing.T) {
		assert.False(t, serverTree().Equal("not a tree"))
	})
	t.Run("rebuilt spines compare equal", func(t *testing.T) {
		tree := serverTree()
		same, err := tree.Assoc("/port", 8080)
		require.NoError(t, err)
		assert.True(t, tree.Equal(same))
	})
}

func TestTreeString(t *testing.T) {
	tree := TreeFrom(map[string]interface{}{"a": "x"})
	assert.Equal(t, `{"a":"x"}`, tree.String())
}
