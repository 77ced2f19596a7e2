// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "errors"

var (
	// ErrInvalidIterator signals use of an iterator that is at the end
	// position, refers to an entry that has been removed, or belongs
	// to a different map.
	ErrInvalidIterator = errors.New("treemap: invalid iterator")
	// ErrKeyNotFound signals that a key passed to At has no entry.
	ErrKeyNotFound = errors.New("treemap: key not found")
	// ErrInvalidConfig signals an invalid map option.
	ErrInvalidConfig = errors.New("treemap: invalid configuration")
	// ErrCorrupt is reported by Check when a tree invariant does not hold.
	ErrCorrupt = errors.New("treemap: corrupt tree")
)

func assert(b bool, msg string) {
	if !b {
		panic("treemap: " + msg)
	}
}
