// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"errors"
	"strconv"
	"strings"

	"jsouthworth.net/go/try"
)

const (
	sp   = " "
	htab = "	"
	wsp  = sp + htab
)

// Key returns a plain key segment. Plain keys address Objects,
// PairLists, and TaggedObjects.
func Key(key string) Segment {
	return Segment{key: key}
}

// Where returns a field filter segment selecting the Array element
// whose field equals the supplied value.
func Where(field string, value interface{}) Segment {
	return Segment{key: field, filter: ValueNew(value)}
}

// Segment is one step of a Path: either a plain key or a field filter.
type Segment struct {
	key    string
	filter *Value
}

// IsFilter returns whether the segment is a field filter.
func (s Segment) IsFilter() bool { return s.filter != nil }

// Key returns the segment's key; for a field filter this is the field
// name the filter matches against.
func (s Segment) Key() string { return s.key }

// FilterValue returns the value a field filter matches against, or nil
// for a plain key segment.
func (s Segment) FilterValue() *Value { return s.filter }

// Equal determines if two segments are the same.
func (s Segment) Equal(other interface{}) bool {
	os, isSegment := other.(Segment)
	if !isSegment {
		return false
	}
	if os.key != s.key {
		return false
	}
	if (s.filter == nil) != (os.filter == nil) {
		return false
	}
	return s.filter == nil || s.filter.Equal(os.filter)
}

// String formats the segment in path literal form.
func (s Segment) String() string {
	if s.filter == nil {
		return quoteKey(s.key)
	}
	return "[" + quoteKey(s.key) + "=" + s.filterValueString() + "]"
}

func (s Segment) filterValueString() string {
	switch v := s.filter.ToInterface().(type) {
	case string:
		return "'" + v + "'"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "'" + s.filter.String() + "'"
	}
}

func quoteKey(key string) string {
	if strings.ContainsAny(key, "/[]='\"") || key == "" {
		return "'" + key + "'"
	}
	return key
}

// PathNew parses a path literal into a Path. Paths match the following
// grammar:
//
//     path       = "/" / *("/" segment)
//     segment    = (key *filter) / (filter *filter)
//     filter     = "[" *WSP key *WSP "=" *WSP filter-val *WSP "]"
//     filter-val = (DQUOTE string DQUOTE) / (SQUOTE string SQUOTE) /
//                  number / "true" / "false"
//     key        = quoted or unquoted string without "/", "[", "]", "="
//
// A key followed by filters yields the key segment and then one filter
// segment per bracket pair; "" and "/" are the empty path, which
// addresses the whole tree. The leading "/" is optional. PathNew panics
// on invalid input; use ParsePath to get an error instead.
func PathNew(path string) *Path {
	return (&Path{}).parse(path)
}

// PathOf builds a Path from the supplied segments.
func PathOf(segments ...Segment) *Path {
	return &Path{segments: segments}
}

// ParsePath parses a path literal, reporting invalid input as an error
// instead of a panic.
func ParsePath(path string) (*Path, error) {
	out, err := try.Apply(PathNew, path)
	if err != nil {
		return nil, err
	}
	return out.(*Path), nil
}

// Path is an ordered sequence of segments addressing one location in a
// tree. The empty path addresses the whole tree.
type Path struct {
	segments []Segment
}

// Length returns the number of segments in the path.
func (p *Path) Length() int {
	return len(p.segments)
}

// Segments returns the path's segments in order.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

func (p *Path) isEmpty() bool {
	return len(p.segments) == 0
}

func (p *Path) head() Segment {
	return p.segments[0]
}

func (p *Path) rest() *Path {
	return &Path{segments: p.segments[1:]}
}

func (p *Path) push(seg Segment) *Path {
	out := make([]Segment, 0, len(p.segments)+1)
	out = append(out, p.segments...)
	out = append(out, seg)
	return &Path{segments: out}
}

// Equal determines if two paths are the same.
func (p *Path) Equal(other interface{}) bool {
	op, isPath := other.(*Path)
	if !isPath || len(op.segments) != len(p.segments) {
		return false
	}
	for i, seg := range p.segments {
		if !seg.Equal(op.segments[i]) {
			return false
		}
	}
	return true
}

// String formats the path as a path literal. Filter segments are
// rendered attached to the preceding segment, the form the parser
// produces them from.
func (p *Path) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var out strings.Builder
	for _, seg := range p.segments {
		if !seg.IsFilter() {
			out.WriteByte('/')
		}
		out.WriteString(seg.String())
	}
	return out.String()
}

// parse implements a straight forward recursive descent parser for the
// path grammar. Using lex/yacc for this would be overkill so just parse
// the segments inline.
func (p *Path) parse(input string) *Path {
	defer func() {
		errstr := "invalid path"
		v := recover()
		if v == nil {
			return
		}
		switch v := v.(type) {
		case string:
			errstr += ": " + v
		case error:
			errstr += ": " + v.Error()
		}
		panic(errors.New(errstr))
	}()

	segStrings := getSegmentStrings(input)
	segments := make([]Segment, 0, len(segStrings))
	for _, segString := range segStrings {
		segments = append(segments, parseSegment(segString)...)
	}
	p.segments = segments
	return p
}

// getSegmentStrings splits the input on unquoted '/' runes. A leading
// '/' is skipped so "/a/b" and "a/b" split identically.
func getSegmentStrings(input string) []string {
	input = strings.TrimPrefix(input, "/")
	if input == "" {
		return nil
	}
	var inSingleQ, inDoubleQ bool
	var out []string
	var first int
	for i, r := range input {
		switch r {
		case '\'':
			inSingleQ = !inSingleQ
		case '"':
			inDoubleQ = !inDoubleQ
		case '/':
			if !inDoubleQ && !inSingleQ {
				out = append(out, input[first:i])
				first = i + 1
			}
		default:
		}
	}
	if inDoubleQ || inSingleQ {
		panic("unterminated quote")
	}
	out = append(out, input[first:])
	return out
}

// parseSegment parses one '/'-separated piece. A piece may carry any
// number of trailing filters, each of which becomes its own segment.
func parseSegment(input string) []Segment {
	if input == "" {
		panic("empty segment")
	}
	keyPart := input
	var filterPart string
	if idx := indexUnquoted(input, '['); idx >= 0 {
		keyPart, filterPart = input[:idx], input[idx:]
	}
	var out []Segment
	if keyPart != "" {
		out = append(out, Key(unquoteKey(keyPart)))
	}
	for _, filterString := range getFilterStrings(filterPart) {
		out = append(out, parseFilter(filterString))
	}
	if len(out) == 0 {
		panic("empty segment")
	}
	return out
}

func indexUnquoted(input string, target rune) int {
	var inSingleQ, inDoubleQ bool
	for i, r := range input {
		switch r {
		case '\'':
			inSingleQ = !inSingleQ
		case '"':
			inDoubleQ = !inDoubleQ
		case target:
			if !inDoubleQ && !inSingleQ {
				return i
			}
		default:
		}
	}
	return -1
}

func getFilterStrings(input string) []string {
	var inSingleQ, inDoubleQ, inFilter bool
	var out []string
	var first int
	for i, r := range input {
		switch r {
		case '[':
			if !inDoubleQ && !inSingleQ {
				if inFilter {
					panic("nested filters are not allowed")
				}
				inFilter = true
				first = i
			}
		case ']':
			if !inDoubleQ && !inSingleQ {
				if !inFilter {
					panic("unbalanced ']'")
				}
				out = append(out, input[first:i+1])
				inFilter = false
			}
		case '\'':
			inSingleQ = !inSingleQ
		case '"':
			inDoubleQ = !inDoubleQ
		default:
			if !inFilter && !inDoubleQ && !inSingleQ {
				panic("unexpected text after filter")
			}
		}
	}
	if inDoubleQ || inSingleQ {
		panic("unterminated quote")
	}
	if inFilter {
		panic("unterminated filter")
	}
	return out
}

func parseFilter(input string) Segment {
	// filter = "[" *WSP key *WSP "=" *WSP filter-val *WSP "]"
	if input[0] != '[' || input[len(input)-1] != ']' {
		panic("invalid filter \"" + input + "\"")
	}
	input = strings.Trim(input[1:len(input)-1], wsp)
	exprParts := splitUnquoted(input, '=')
	if len(exprParts) != 2 {
		panic("invalid filter expression " + input)
	}
	field := unquoteKey(strings.Trim(exprParts[0], wsp))
	if field == "" {
		panic("empty filter field")
	}
	return Where(field, parseFilterValue(strings.Trim(exprParts[1], wsp)))
}

func splitUnquoted(input string, target rune) []string {
	if idx := indexUnquoted(input, target); idx >= 0 {
		return []string{input[:idx], input[idx+1:]}
	}
	return []string{input}
}

func parseFilterValue(input string) interface{} {
	if input == "" {
		panic("empty filter value")
	}
	switch input[0] {
	case '\'', '"':
		quote := input[0]
		if len(input) < 2 || input[len(input)-1] != quote {
			panic("unterminated filter value")
		}
		return input[1 : len(input)-1]
	}
	switch input {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(input, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(input, 64); err == nil {
		return f
	}
	panic("invalid filter value \"" + input + "\"")
}

func unquoteKey(input string) string {
	if len(input) >= 2 {
		switch input[0] {
		case '\'', '"':
			if input[len(input)-1] == input[0] {
				return input[1 : len(input)-1]
			}
		}
	}
	return input
}

// pathOf normalizes the path argument accepted by the Tree operations.
// It accepts a *Path, a path literal string, or a single Segment as
// shorthand for a one segment path.
func pathOf(path interface{}) *Path {
	switch p := path.(type) {
	case *Path:
		return p
	case Segment:
		return PathOf(p)
	case string:
		return PathNew(p)
	default:
		panic(errors.New("invalid path type"))
	}
}
