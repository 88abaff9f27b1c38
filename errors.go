// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"errors"
	"fmt"
)

// Sentinel error classes. Operations wrap these in the typed errors
// below so callers may use either errors.Is for classification or
// errors.As to recover the offending path.
var (
	// ErrKeyNotFound indicates the addressed key or element does not
	// exist at some point along the path.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIncompatiblePath indicates the path traverses or writes into
	// a value whose kind cannot support that traversal.
	ErrIncompatiblePath = errors.New("incompatible path")
)

// KeyNotFoundError is returned by Fetch, Assoc, and Delete when the
// addressed key or element is missing. Path is the full path the caller
// supplied, never the remainder at the point of failure.
type KeyNotFoundError struct {
	Path *Path
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrKeyNotFound, e.Path)
}

// Unwrap allows errors.Is(err, ErrKeyNotFound).
func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// IncompatiblePathError is returned by Assoc and Delete when the path
// attempts to descend through a scalar, address an Array without a
// matching filter, or otherwise use a segment against a container kind
// that cannot support it. Path is the full path the caller supplied.
type IncompatiblePathError struct {
	Path *Path
}

func (e *IncompatiblePathError) Error() string {
	return fmt.Sprintf("%v: %v", ErrIncompatiblePath, e.Path)
}

// Unwrap allows errors.Is(err, ErrIncompatiblePath).
func (e *IncompatiblePathError) Unwrap() error { return ErrIncompatiblePath }

func keyNotFound(path *Path) error {
	return &KeyNotFoundError{Path: path}
}

func incompatiblePath(path *Path) error {
	return &IncompatiblePathError{Path: path}
}
