// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

func expect(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}
