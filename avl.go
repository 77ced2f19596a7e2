// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// avlRebalance walks from x up to the root, recomputing heights and
// rotating wherever a balance factor has left [-1, 1].
// The rotations keep every node's identity; only links and heights change.
func (t *base[K, V]) avlRebalance(x *node[K, V]) {
	for ; x != nil; x = x.parent {
		x.setHeight()
		switch b := x.balance(); {
		case b > 1:
			if x.left.balance() < 0 {
				t.rotateLeft(x.left) // left-right
			}
			t.rotateRight(x)
		case b < -1:
			if x.right.balance() > 0 {
				t.rotateRight(x.right) // right-left
			}
			t.rotateLeft(x)
		}
		// After a rotation x has moved down; x.parent is the new
		// subtree root, whose height is already correct.
	}
}
