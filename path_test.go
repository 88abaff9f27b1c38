// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"testing"
)

func TestPathParsing(t *testing.T) {
	runTest := func(test, expected string) {
		t.Run(test, func(t *testing.T) {
			got := PathNew(test).String()
			if got != expected {
				t.Fatalf("expected %s, got %s\n", expected, got)
			}
		})
	}
	const sQExpected = "/interfaces/interface[name='eth0']/address"
	sQTests := []string{
		"/interfaces/interface[name='eth0']/address",
		"interfaces/interface[name='eth0']/address",
		"/interfaces/interface[	name='eth0']/address",
		"/interfaces/interface[name='eth0'	]/address",
		"/interfaces/interface[  name='eth0'	]/address",
		"/interfaces/interface[name ='eth0']/address",
		"/interfaces/interface[name = 'eth0']/address",
		"/interfaces/interface[name=\"eth0\"]/address",
	}
	for _, test := range sQTests {
		runTest(test, sQExpected)
	}
	runTest("/foo[id=\"bar\"]", "/foo[id='bar']")
	runTest("/foo/bar[id=\"baz\"][id2=\"quux\"]",
		"/foo/bar[id='baz'][id2='quux']")
	runTest("/foo[count=10]", "/foo[count=10]")
	runTest("/foo[up=true]", "/foo[up=true]")
	runTest("/foo[load=0.5]", "/foo[load=0.5]")
	runTest("/'a/b'/c", "/'a/b'/c")
	runTest("", "/")
	runTest("/", "/")
}

func TestPathParsingSegments(t *testing.T) {
	t.Run("key and filter split into two segments", func(t *testing.T) {
		p := PathNew("/list[key='3']/value")
		expect(p.Length() == 3, func() {
			t.Fatalf("expected 3 segments, got %d\n", p.Length())
		})
		segs := p.Segments()
		expect(segs[0].Equal(Key("list")), func() {
			t.Fatalf("expected key list, got %v\n", segs[0])
		})
		expect(segs[1].Equal(Where("key", "3")), func() {
			t.Fatalf("expected filter, got %v\n", segs[1])
		})
		expect(segs[2].Equal(Key("value")), func() {
			t.Fatalf("expected key value, got %v\n", segs[2])
		})
	})
	t.Run("bare filter segment", func(t *testing.T) {
		p := PathNew("/list/[key='3']")
		expect(p.Length() == 2, func() {
			t.Fatalf("expected 2 segments, got %d\n", p.Length())
		})
		expect(p.Segments()[1].IsFilter(), func() {
			t.Fatalf("expected filter segment\n")
		})
	})
	t.Run("numeric filter values are typed", func(t *testing.T) {
		p := PathNew("/list[n=3]")
		v := p.Segments()[1].FilterValue()
		expect(v.IsInt() && v.AsInt() == 3, func() {
			t.Fatalf("expected int64 3, got %v\n", v)
		})
	})
	t.Run("equivalent constructions are equal", func(t *testing.T) {
		expect(PathNew("/a/b[k='v']").
			Equal(PathOf(Key("a"), Key("b"), Where("k", "v"))),
			func() {
				t.Fatalf("paths differ\n")
			})
	})
}

func TestPathParsingFailures(t *testing.T) {
	tFunc := func(test string) {
		t.Run(test, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected a panic\n")
				}
			}()
			PathNew(test)
		})
	}
	tFunc("/a/'b")
	tFunc("/a//b")
	tFunc("/a[b]")
	tFunc("/a[b=]")
	tFunc("/a[=c]")
	tFunc("/a[b='c")
	tFunc("/a[b='c']junk")
	tFunc("/a[b[c='d']]")
	tFunc("/a[b=c]")
}

func TestParsePath(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ParsePath("/a/b")
		if err != nil {
			t.Fatalf("unexpected error %v\n", err)
		}
		if p.Length() != 2 {
			t.Fatalf("expected 2 segments, got %d\n", p.Length())
		}
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := ParsePath("/a['b")
		if err == nil {
			t.Fatalf("expected an error\n")
		}
	})
}

func TestSegmentEqual(t *testing.T) {
	expect(Key("a").Equal(Key("a")), func() {
		t.Fatalf("expected keys to be equal\n")
	})
	expect(!Key("a").Equal(Key("b")), func() {
		t.Fatalf("expected keys to differ\n")
	})
	expect(!Key("a").Equal(Where("a", 1)), func() {
		t.Fatalf("expected key and filter to differ\n")
	})
	expect(Where("a", 1).Equal(Where("a", 1)), func() {
		t.Fatalf("expected filters to be equal\n")
	})
	expect(!Where("a", 1).Equal(Where("a", 2)), func() {
		t.Fatalf("expected filters to differ\n")
	})
}
