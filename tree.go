// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "cmp"

// comparer orders keys: negative if a < b, zero if a and b are
// equivalent, positive if a > b.
type comparer[K any] interface {
	compare(a, b K) int
}

// natural orders keys by cmp.Compare. It has no state, so the zero
// value of a Map is ready to use.
type natural[K cmp.Ordered] struct{}

func (natural[K]) compare(a, b K) int { return cmp.Compare(a, b) }

// funcOrder orders keys by a caller-supplied function.
type funcOrder[K any] func(a, b K) int

func (f funcOrder[K]) compare(a, b K) int { return f(a, b) }

// base holds the parts of a tree that do not depend on key order:
// the nodes, the entry count and the balancing scheme.
// Iterators refer to a map through its base.
type base[K, V any] struct {
	root *node[K, V]
	len  int
	bal  Balance
}

// tree is a balanced binary search tree ordered by C.
type tree[K, V any, C comparer[K]] struct {
	base[K, V]
	cmp C
}

// find reports where a node with the key would be: at *pos.
// If *pos != nil, then key is present in the tree;
// otherwise *pos is where a new node with the key should be attached.
//
// If parent != nil, then pos is either &parent.left or &parent.right.
// If parent == nil, then pos is &t.root.
func (t *tree[K, V, C]) find(key K) (pos **node[K, V], parent *node[K, V]) {
	pos = &t.root
	for x := *pos; x != nil; x = *pos {
		c := t.cmp.compare(x.key, key)
		if c == 0 {
			break
		}
		parent = x
		if c > 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// lookup returns the node holding key, or nil.
func (t *tree[K, V, C]) lookup(key K) *node[K, V] {
	pos, _ := t.find(key)
	return *pos
}

// insert adds a node for key unless an equivalent key is present.
// It returns the node holding key and whether it was added.
func (t *tree[K, V, C]) insert(key K, val V) (x *node[K, V], added bool) {
	pos, parent := t.find(key)
	if x = *pos; x != nil {
		return x, false
	}
	x = &node[K, V]{parent: parent, key: key, val: val}
	*pos = x
	t.len++
	switch t.bal {
	case AVL:
		x.rank = 1
		t.avlRebalance(parent)
	default:
		x.rank = red
		t.rbInsertFixup(x)
	}
	return x, true
}

// ceil returns the node with the least key k such that k ≥ key,
// and whether k is equivalent to key.
func (t *tree[K, V, C]) ceil(key K) (ge *node[K, V], eq bool) {
	for x := t.root; x != nil; {
		switch c := t.cmp.compare(x.key, key); {
		case c == 0:
			return x, true
		case c > 0:
			ge = x
			x = x.left
		default:
			x = x.right
		}
	}
	return ge, false
}

// floor returns the node with the greatest key k such that k ≤ key,
// and whether k is equivalent to key.
func (t *tree[K, V, C]) floor(key K) (le *node[K, V], eq bool) {
	for x := t.root; x != nil; {
		switch c := t.cmp.compare(x.key, key); {
		case c == 0:
			return x, true
		case c < 0:
			le = x
			x = x.right
		default:
			x = x.left
		}
	}
	return le, false
}

// above returns the node with the least key greater than key.
func (t *tree[K, V, C]) above(key K) *node[K, V] {
	x, eq := t.ceil(key)
	if eq {
		x = x.next()
	}
	return x
}

// below returns the node with the greatest key less than key.
func (t *tree[K, V, C]) below(key K) *node[K, V] {
	x, eq := t.floor(key)
	if eq {
		x = x.prev()
	}
	return x
}

// after returns the successor of x in the tree,
// even if x has been removed from the tree.
func (t *tree[K, V, C]) after(x *node[K, V]) *node[K, V] {
	if x.isRemoved() {
		// Find where x.key would be in the current tree.
		return t.above(x.key)
	}
	return x.next()
}

// before returns the predecessor of x in the tree,
// even if x has been removed from the tree.
func (t *tree[K, V, C]) before(x *node[K, V]) *node[K, V] {
	if x.isRemoved() {
		return t.below(x.key)
	}
	return x.prev()
}

// remove takes z out of the tree and restores balance.
//
// A node with two children is replaced by its in-order successor:
// the successor node itself moves into z's position, so every other
// node keeps its identity and only z is invalidated.
func (t *base[K, V]) remove(z *node[K, V]) {
	var x, xp *node[K, V] // the node that took the removed slot, and its parent
	lost := z.rank        // balancing state of the slot that disappeared
	switch {
	case z.left == nil:
		x, xp = z.right, z.parent
		t.replace(z, z.right)
	case z.right == nil:
		x, xp = z.left, z.parent
		t.replace(z, z.left)
	default:
		y := z.right.minNode()
		lost = y.rank
		x = y.right
		if y.parent == z {
			xp = y
		} else {
			xp = y.parent
			t.replace(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replace(z, y)
		y.left = z.left
		y.left.parent = y
		y.rank = z.rank
	}
	t.len--
	z.detach()

	switch t.bal {
	case AVL:
		t.avlRebalance(xp)
	default:
		if lost == black {
			t.rbEraseFixup(x, xp)
		}
	}
}

// replace puts v where u is in the tree. u's own links are unchanged.
func (t *base[K, V]) replace(u, v *node[K, V]) {
	switch p := u.parent; {
	case p == nil:
		t.root = v
	case p.left == u:
		p.left = v
	default:
		assert(p.right == u, "corrupt tree: node is not a child of its parent")
		p.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *base[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	b := y.left
	t.replace(x, y)

	y.left = x
	x.parent = y
	x.right = b
	if b != nil {
		b.parent = x
	}
	if t.bal == AVL {
		x.setHeight()
		y.setHeight()
	}
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *base[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	b := x.right
	t.replace(y, x)

	x.right = y
	y.parent = x
	y.left = b
	if b != nil {
		b.parent = y
	}
	if t.bal == AVL {
		y.setHeight()
		x.setHeight()
	}
}

// release detaches every node, children before parents, and empties t.
func (t *base[K, V]) release() {
	var free func(*node[K, V])
	free = func(x *node[K, V]) {
		if x == nil {
			return
		}
		free(x.left)
		free(x.right)
		x.detach()
	}
	free(t.root)
	t.root = nil
	t.len = 0
}

// copyFrom makes t a deep copy of src. Nodes previously owned by t are released.
func (t *base[K, V]) copyFrom(src *base[K, V]) {
	if t == src {
		return
	}
	if t.root != nil {
		tracer().Debugf("assign: releasing %d entries", t.len)
		t.release()
	}
	t.root = src.root.clone(nil)
	t.len = src.len
	t.bal = src.bal
}
