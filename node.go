// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// A node is a node in the binary search tree.
type node[K, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	key    K
	val    V
	// rank is the balancing state: red or black in red-black trees,
	// the subtree height in AVL trees. A node that has been taken out
	// of its tree has rank removed.
	rank int32
}

const (
	red     int32 = 0
	black   int32 = 1
	removed int32 = -1
)

func (x *node[K, V]) isRed() bool {
	return x != nil && x.rank == red
}

func (x *node[K, V]) isRemoved() bool {
	return x.rank == removed
}

// height returns the AVL height of x's subtree.
// The empty subtree has height 0.
func (x *node[K, V]) height() int32 {
	if x == nil {
		return 0
	}
	return x.rank
}

// setHeight recomputes x's height from its children.
func (x *node[K, V]) setHeight() {
	x.rank = 1 + max(x.left.height(), x.right.height())
}

// balance returns the AVL balance factor of x: left height minus right height.
func (x *node[K, V]) balance() int32 {
	return x.left.height() - x.right.height()
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *node[K, V]) minNode() *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *node[K, V]) maxNode() *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// next returns the in-order successor of x, or nil if x is the maximum.
// x must be in a tree.
func (x *node[K, V]) next() *node[K, V] {
	if x.right != nil {
		return x.right.minNode()
	}
	for x.parent != nil && x.parent.right == x {
		x = x.parent
	}
	return x.parent
}

// prev returns the in-order predecessor of x, or nil if x is the minimum.
// x must be in a tree.
func (x *node[K, V]) prev() *node[K, V] {
	if x.left != nil {
		return x.left.maxNode()
	}
	for x.parent != nil && x.parent.left == x {
		x = x.parent
	}
	return x.parent
}

// clone returns a deep copy of x's subtree attached to parent.
// Balancing state is copied along with the entries.
func (x *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	c := *x
	x2 := &c
	x2.left = x.left.clone(x2)
	x2.right = x.right.clone(x2)
	x2.parent = parent
	return x2
}

// detach marks x as removed and drops its links.
func (x *node[K, V]) detach() {
	x.parent, x.left, x.right = nil, nil, nil
	x.rank = removed
}
