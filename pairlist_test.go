// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"testing"
)

func TestPairListLookup(t *testing.T) {
	list := PairListWith(
		PairNew("a", 1),
		PairNew("b", 2),
		PairNew("a", 3),
	)
	t.Run("first match wins on duplicate keys", func(t *testing.T) {
		got := list.At("a")
		expect(equal(got, ValueNew(1)), func() {
			t.Fatalf("expected 1, got %v\n", got)
		})
	})
	t.Run("Find reports missing keys", func(t *testing.T) {
		_, found := list.Find("missing")
		expect(!found, func() {
			t.Fatalf("expected not found\n")
		})
	})
	t.Run("Contains", func(t *testing.T) {
		expect(list.Contains("b") && !list.Contains("c"), func() {
			t.Fatalf("unexpected contains results\n")
		})
	})
}

func TestPairListOrder(t *testing.T) {
	list := PairListWith(
		PairNew("x", 1),
		PairNew("y", 2),
		PairNew("z", 3),
	)
	var keys []string
	list.Range(func(p Pair) {
		keys = append(keys, p.Key().Key())
	})
	expect(len(keys) == 3 &&
		keys[0] == "x" && keys[1] == "y" && keys[2] == "z", func() {
		t.Fatalf("expected insertion order, got %v\n", keys)
	})
}

func TestPairListMutation(t *testing.T) {
	list := PairListWith(PairNew("a", 1), PairNew("b", 2))
	t.Run("Append preserves existing pairs", func(t *testing.T) {
		got := list.Append(PairNew("c", 3))
		expect(got.Length() == 3 && list.Length() == 2, func() {
			t.Fatalf("expected structural sharing, got %v\n", got)
		})
		expect(equal(got.At("c"), ValueNew(3)), func() {
			t.Fatalf("expected 3, got %v\n", got.At("c"))
		})
	})
	t.Run("assocAt replaces in place", func(t *testing.T) {
		got := list.assocAt(1, PairNew("b", 20))
		expect(equal(got.At("b"), ValueNew(20)), func() {
			t.Fatalf("expected 20, got %v\n", got.At("b"))
		})
		expect(equal(got.At("a"), ValueNew(1)), func() {
			t.Fatalf("expected untouched sibling, got %v\n",
				got.At("a"))
		})
	})
	t.Run("deleteAt keeps order", func(t *testing.T) {
		got := PairListWith(
			PairNew("a", 1),
			PairNew("b", 2),
			PairNew("c", 3),
		).deleteAt(1)
		var keys []string
		got.Range(func(p Pair) {
			keys = append(keys, p.Key().Key())
		})
		expect(len(keys) == 2 && keys[0] == "a" && keys[1] == "c",
			func() {
				t.Fatalf("expected [a c], got %v\n", keys)
			})
	})
}

func TestPairListEqual(t *testing.T) {
	one := PairListWith(PairNew("a", 1), PairNew("b", 2))
	two := PairListWith(PairNew("a", 1), PairNew("b", 2))
	reordered := PairListWith(PairNew("b", 2), PairNew("a", 1))
	expect(one.Equal(two), func() {
		t.Fatalf("expected equal lists\n")
	})
	expect(!one.Equal(reordered), func() {
		t.Fatalf("expected order to matter\n")
	})
}

func TestPairListFindSegment(t *testing.T) {
	filtered := PairWith(Where("k", "v"), 1)
	list := PairListWith(PairNew("a", 1), filtered)
	t.Run("plain keys do not match filter pairs", func(t *testing.T) {
		_, found := list.Find("k")
		expect(!found, func() {
			t.Fatalf("expected filter keyed pair to be skipped\n")
		})
	})
	t.Run("filter segments match filter pairs", func(t *testing.T) {
		idx, found := list.findSegment(Where("k", "v"))
		expect(found && idx == 1, func() {
			t.Fatalf("expected index 1, got %d %v\n", idx, found)
		})
	})
}
