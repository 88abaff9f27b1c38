// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"testing"
)

func TestArrayBasics(t *testing.T) {
	arr := ArrayWith(1, 2, 3)
	t.Run("At", func(t *testing.T) {
		expect(equal(arr.At(0), ValueNew(1)), func() {
			t.Fatalf("expected 1, got %v\n", arr.At(0))
		})
		expect(arr.At(3) == nil && arr.At(-1) == nil, func() {
			t.Fatalf("expected nil out of bounds\n")
		})
	})
	t.Run("Append", func(t *testing.T) {
		got := arr.Append(4)
		expect(got.Length() == 4 && arr.Length() == 3, func() {
			t.Fatalf("expected structural sharing\n")
		})
	})
	t.Run("Delete keeps order", func(t *testing.T) {
		got := arr.Delete(1)
		expect(got.Length() == 2 &&
			equal(got.At(0), ValueNew(1)) &&
			equal(got.At(1), ValueNew(3)), func() {
			t.Fatalf("expected [1 3], got %v\n", got)
		})
	})
	t.Run("Assoc pads out of bounds", func(t *testing.T) {
		got := ArrayNew().Assoc(2, "x")
		expect(got.Length() == 3 && got.At(0).IsNull(), func() {
			t.Fatalf("expected padded array, got %v\n", got)
		})
	})
}

func TestArrayMatch(t *testing.T) {
	arr := ArrayFrom([]interface{}{
		"scalar",
		map[string]interface{}{"name": "a", "value": 1},
		map[string]interface{}{"name": "b", "value": 2},
	})
	t.Run("matches the first object with the field", func(t *testing.T) {
		idx, elem, found := arr.match(Where("name", "b"))
		expect(found && idx == 2, func() {
			t.Fatalf("expected index 2, got %d\n", idx)
		})
		expect(equal(elem.AsObject().At("value"), ValueNew(2)),
			func() {
				t.Fatalf("unexpected element %v\n", elem)
			})
	})
	t.Run("scalar elements never match", func(t *testing.T) {
		_, _, found := arr.match(Where("scalar", "scalar"))
		expect(!found, func() {
			t.Fatalf("expected no match\n")
		})
	})
	t.Run("value must be equal, not just present", func(t *testing.T) {
		_, _, found := arr.match(Where("name", "missing"))
		expect(!found, func() {
			t.Fatalf("expected no match\n")
		})
	})
	t.Run("tagged objects match through the wrapper", func(t *testing.T) {
		tagged := ArrayWith(TaggedObjectWith(
			PairNew("name", "t"),
			PairNew("value", 9),
		))
		idx, _, found := tagged.match(Where("name", "t"))
		expect(found && idx == 0, func() {
			t.Fatalf("expected a match, got %v\n", found)
		})
	})
}

func TestArraySort(t *testing.T) {
	arr := ArrayWith(3, 1, 2).Sort()
	expect(equal(arr.At(0), ValueNew(1)) &&
		equal(arr.At(1), ValueNew(2)) &&
		equal(arr.At(2), ValueNew(3)), func() {
		t.Fatalf("expected sorted array, got %v\n", arr)
	})
	reversed := ArrayWith(1, 3, 2).Sort(Compare(func(a, b *Value) int {
		return b.Compare(a)
	}))
	expect(equal(reversed.At(0), ValueNew(3)), func() {
		t.Fatalf("expected reverse sort, got %v\n", reversed)
	})
}

func TestArrayEqual(t *testing.T) {
	expect(ArrayWith(1, 2).Equal(ArrayWith(1, 2)), func() {
		t.Fatalf("expected equal arrays\n")
	})
	expect(!ArrayWith(1, 2).Equal(ArrayWith(2, 1)), func() {
		t.Fatalf("expected order to matter\n")
	})
}
