// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

// Package subtree implements a convenient object model for interacting
// with trees of semi-structured data that mix several container
// representations: Objects (unordered key-unique mappings), PairLists
// (ordered key/value pairs), TaggedObjects (a wrapper marking a
// PairList as object-shaped), and Arrays (ordered elements addressed by
// field filters). All containers are immutable; mutation operations
// return a new structurally shared copy with the changes made, which
// makes copies cheap and lets trees be shared freely between callers.
// The library is built around the central Value type that holds
// arbitrary tree data. The provided Tree type allows complex
// operations addressed by paths such as /servers[name='web']/port.
package subtree
