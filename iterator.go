// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// An Iterator is a position in a map: either an entry or the end
// position just past the largest entry.
//
// Iterators are comparable. Two iterators are == exactly when they were
// issued by the same map and denote the same position. The zero Iterator
// belongs to no map and is invalid.
//
// Inserting or erasing entries does not move existing iterators: an
// iterator stays on its entry until that entry is removed, after which
// every use of it fails with ErrInvalidIterator.
type Iterator[K, V any] struct {
	t *base[K, V]
	x *node[K, V] // nil at the end position
}

// onEntry reports whether it denotes an entry that is still in its map.
func (it Iterator[K, V]) onEntry() bool {
	return it.t != nil && it.x != nil && !it.x.isRemoved()
}

// IsEnd reports whether it is the end position of a map.
func (it Iterator[K, V]) IsEnd() bool {
	return it.t != nil && it.x == nil
}

// Valid reports whether it denotes an entry that can be dereferenced.
func (it Iterator[K, V]) Valid() bool {
	return it.onEntry()
}

// Equal reports whether it and other denote the same position of the same map.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it == other
}

// Key returns the key of the entry at it.
func (it Iterator[K, V]) Key() (K, error) {
	if !it.onEntry() {
		var zero K
		return zero, ErrInvalidIterator
	}
	return it.x.key, nil
}

// Value returns a pointer to the value of the entry at it.
// The value may be modified through the pointer; the key may not be changed.
func (it Iterator[K, V]) Value() (*V, error) {
	if !it.onEntry() {
		return nil, ErrInvalidIterator
	}
	return &it.x.val, nil
}

// Next moves it to the following entry, or to the end position
// after the largest entry.
// It fails with ErrInvalidIterator if it is already at the end or
// does not denote an entry.
func (it *Iterator[K, V]) Next() error {
	if !it.onEntry() {
		return ErrInvalidIterator
	}
	it.x = it.x.next()
	return nil
}

// Prev moves it to the preceding entry. From the end position it moves
// to the largest entry.
// It fails with ErrInvalidIterator, leaving it unchanged, if there is no
// preceding entry.
func (it *Iterator[K, V]) Prev() error {
	switch {
	case it.t == nil:
		return ErrInvalidIterator
	case it.x == nil:
		if it.t.root == nil {
			return ErrInvalidIterator
		}
		it.x = it.t.root.maxNode()
		return nil
	case it.x.isRemoved():
		return ErrInvalidIterator
	}
	p := it.x.prev()
	if p == nil {
		return ErrInvalidIterator
	}
	it.x = p
	return nil
}

// Begin returns an iterator at the smallest entry, or End if the map is empty.
func (t *base[K, V]) Begin() Iterator[K, V] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[K, V]{t: t, x: t.root.minNode()}
}

// End returns the end position of the map.
func (t *base[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: t}
}

func (t *base[K, V]) at(x *node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{t: t, x: x}
}

// Erase removes the entry at it.
// It fails with ErrInvalidIterator, without changing the map, if it is the
// end position, has already been erased, or belongs to another map.
// Erase invalidates only it and its copies.
func (t *base[K, V]) Erase(it Iterator[K, V]) error {
	if it.t != t || !it.onEntry() {
		tracer().Debugf("erase: rejected iterator (foreign=%t, end=%t)", it.t != t, it.x == nil)
		return ErrInvalidIterator
	}
	t.remove(it.x)
	return nil
}
