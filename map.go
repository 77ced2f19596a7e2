// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treemap implements in-memory ordered maps backed by
// self-balancing binary search trees.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
//
// A map is balanced either as a red-black tree (the default) or as an
// AVL tree; see [WithBalance]. Positions in a map are [Iterator] values,
// which stay valid across insertions and removals of other entries.
//
// Maps are not safe for concurrent use.
package treemap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/jba/treemap/rng"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty red-black Map ready to use.
// A Map must not be copied after first use; use [Map.Clone].
type Map[K cmp.Ordered, V any] struct {
	tree[K, V, natural[K]]
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a MapFunc is not meaningful since it has no comparison function.
// Use [NewMapFunc] to create a [MapFunc].
type MapFunc[K, V any] struct {
	tree[K, V, funcOrder[K]]
}

// New returns an empty Map configured by opts.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	cfg := newConfig(opts)
	m := new(Map[K, V])
	m.bal = cfg.balance
	return m
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to cmp.
// cmp(a, b) must be negative when a < b, zero when a and b are
// equivalent, and positive when a > b, and must define a strict weak order.
func NewMapFunc[K, V any](cmp func(K, K) int, opts ...Option) *MapFunc[K, V] {
	cfg := newConfig(opts)
	m := new(MapFunc[K, V])
	m.cmp = cmp
	m.bal = cfg.balance
	return m
}

// Clone returns a copy of m that shares no nodes with m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m2 := new(Map[K, V])
	m2.copyFrom(&m.base)
	return m2
}

// Clone returns a copy of m that shares no nodes with m.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	m2 := NewMapFunc[K, V](m.cmp)
	m2.copyFrom(&m.base)
	return m2
}

// Assign replaces the contents of m by a copy of src, including its
// balancing scheme. Iterators into m are invalidated.
// Assigning a map to itself does nothing.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	m.copyFrom(&src.base)
}

// Assign replaces the contents of m by a copy of src, including its
// balancing scheme and comparison function. Iterators into m are invalidated.
// Assigning a map to itself does nothing.
func (m *MapFunc[K, V]) Assign(src *MapFunc[K, V]) {
	if m == src {
		return
	}
	m.cmp = src.cmp
	m.copyFrom(&src.base)
}

// Len returns the number of entries in the map.
func (t *base[K, V]) Len() int {
	return t.len
}

// Empty reports whether the map has no entries.
func (t *base[K, V]) Empty() bool {
	return t.len == 0
}

// Clear removes all entries. Iterators into the map are invalidated.
func (t *base[K, V]) Clear() {
	if t.root != nil {
		tracer().Debugf("clear: releasing %d entries", t.len)
	}
	t.release()
}

// Min returns the minimum key in the map and true.
// If the map is empty, the second return value is false.
func (t *base[K, V]) Min() (K, bool) {
	if t.root == nil {
		var z K
		return z, false
	}
	return t.root.minNode().key, true
}

// Max returns the maximum key in the map and true.
// If the map is empty, the second return value is false.
func (t *base[K, V]) Max() (K, bool) {
	if t.root == nil {
		var z K
		return z, false
	}
	return t.root.maxNode().key, true
}

// Insert adds an entry for key with value val unless an equivalent key
// is already present. It returns an iterator to the entry for key and
// reports whether the entry was added. An existing entry is left as is.
func (t *tree[K, V, C]) Insert(key K, val V) (Iterator[K, V], bool) {
	x, added := t.insert(key, val)
	return t.at(x), added
}

// Find returns an iterator to the entry for key, or End if there is none.
func (t *tree[K, V, C]) Find(key K) Iterator[K, V] {
	return t.at(t.lookup(key))
}

// Count returns the number of entries for key: 0 or 1.
func (t *tree[K, V, C]) Count(key K) int {
	if t.lookup(key) != nil {
		return 1
	}
	return 0
}

// At returns a pointer to the value for key.
// If key is absent, At fails with an error wrapping ErrKeyNotFound
// and the map is not changed.
func (t *tree[K, V, C]) At(key K) (*V, error) {
	x := t.lookup(key)
	if x == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return &x.val, nil
}

// Ref returns a pointer to the value for key, first adding an entry
// with the zero value if key is absent.
func (t *tree[K, V, C]) Ref(key K) *V {
	var zero V
	x, _ := t.insert(key, zero)
	return &x.val
}

// Get returns the value of m[key] and reports whether it exists.
func (t *tree[K, V, C]) Get(key K) (V, bool) {
	if x := t.lookup(key); x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (t *tree[K, V, C]) Set(key K, val V) (old V, added bool) {
	x, added := t.insert(key, val)
	if !added {
		old, x.val = x.val, val
	}
	return old, added
}

// Delete deletes m[key] if it exists, and reports whether it did.
func (t *tree[K, V, C]) Delete(key K) bool {
	x := t.lookup(key)
	if x == nil {
		return false
	}
	t.remove(x)
	return true
}

// LowerBound returns an iterator to the entry with the least key not less
// than key, or End if there is none.
func (t *tree[K, V, C]) LowerBound(key K) Iterator[K, V] {
	x, _ := t.ceil(key)
	return t.at(x)
}

// UpperBound returns an iterator to the entry with the least key greater
// than key, or End if there is none.
func (t *tree[K, V, C]) UpperBound(key K) Iterator[K, V] {
	return t.at(t.above(key))
}

// All returns an iterator over the map from smallest to largest key.
// If the map is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (t *tree[K, V, C]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := t.root
		if x != nil {
			x = x.minNode()
		}
		for x != nil && yield(x.key, x.val) {
			x = t.after(x)
		}
	}
}

// Backward returns an iterator over the map from largest to smallest key.
// If the map is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (t *tree[K, V, C]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := t.root
		if x != nil {
			x = x.maxNode()
		}
		for x != nil && yield(x.key, x.val) {
			x = t.before(x)
		}
	}
}

// Scan returns an iterator over the entries whose keys lie in r,
// in increasing key order, or in decreasing order if r.IsBackwards().
// If the map is modified during the iteration, some keys may not be visited.
func (t *tree[K, V, C]) Scan(r rng.Range[K]) iter.Seq2[K, V] {
	compare := t.cmp.compare
	if r.IsBackwards() {
		return func(yield func(K, V) bool) {
			for x := t.scanHigh(r); x != nil && r.AboveLow(compare, x.key) && yield(x.key, x.val); {
				x = t.before(x)
			}
		}
	}
	return func(yield func(K, V) bool) {
		for x := t.scanLow(r); x != nil && r.BelowHigh(compare, x.key) && yield(x.key, x.val); {
			x = t.after(x)
		}
	}
}

// scanLow returns the smallest node satisfying r's low bound.
func (t *tree[K, V, C]) scanLow(r rng.Range[K]) *node[K, V] {
	lo, infinite, includes := r.Low()
	switch {
	case infinite:
		if t.root == nil {
			return nil
		}
		return t.root.minNode()
	case includes:
		x, _ := t.ceil(lo)
		return x
	default:
		return t.above(lo)
	}
}

// scanHigh returns the largest node satisfying r's high bound.
func (t *tree[K, V, C]) scanHigh(r rng.Range[K]) *node[K, V] {
	hi, infinite, includes := r.High()
	switch {
	case infinite:
		if t.root == nil {
			return nil
		}
		return t.root.maxNode()
	case includes:
		x, _ := t.floor(hi)
		return x
	default:
		return t.below(hi)
	}
}
