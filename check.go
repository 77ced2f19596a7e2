// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import "fmt"

// Check validates the structural invariants of the map: key order,
// parent links, the entry count, and the red-black or AVL balance rules.
// It returns an error wrapping ErrCorrupt for the first violation found.
//
// Check visits every entry; it is meant for tests and debugging.
func (t *tree[K, V, C]) Check() error {
	err := t.check()
	if err != nil {
		tracer().Errorf("check: %v", err)
	}
	return err
}

func (t *tree[K, V, C]) check() error {
	if t.root == nil {
		if t.len != 0 {
			return fmt.Errorf("%w: empty tree has length %d", ErrCorrupt, t.len)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.root.key)
	}
	if t.bal == RedBlack && t.root.isRed() {
		return fmt.Errorf("%w: root %v is red", ErrCorrupt, t.root.key)
	}
	var prev *node[K, V]
	n, _, err := t.checkNode(t.root, &prev)
	if err != nil {
		return err
	}
	if n != t.len {
		return fmt.Errorf("%w: %d reachable entries, length %d", ErrCorrupt, n, t.len)
	}
	return nil
}

// checkNode checks the subtree rooted at x, which must not be nil.
// prev tracks the previous node in order.
// It returns the number of nodes and the subtree's black height
// (red-black) or height (AVL).
func (t *tree[K, V, C]) checkNode(x *node[K, V], prev **node[K, V]) (n int, h int32, err error) {
	var ln, rn int
	var lh, rh int32
	if x.left != nil {
		if x.left.parent != x {
			return 0, 0, fmt.Errorf("%w: bad parent link at %v", ErrCorrupt, x.left.key)
		}
		if ln, lh, err = t.checkNode(x.left, prev); err != nil {
			return 0, 0, err
		}
	}
	if p := *prev; p != nil && t.cmp.compare(p.key, x.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v does not follow %v", ErrCorrupt, x.key, p.key)
	}
	*prev = x
	if x.right != nil {
		if x.right.parent != x {
			return 0, 0, fmt.Errorf("%w: bad parent link at %v", ErrCorrupt, x.right.key)
		}
		if rn, rh, err = t.checkNode(x.right, prev); err != nil {
			return 0, 0, err
		}
	}
	n = ln + rn + 1

	switch t.bal {
	case AVL:
		if lh-rh > 1 || rh-lh > 1 {
			return 0, 0, fmt.Errorf("%w: key %v has balance %d", ErrCorrupt, x.key, lh-rh)
		}
		h = 1 + max(lh, rh)
		if x.rank != h {
			return 0, 0, fmt.Errorf("%w: key %v has height %d, want %d", ErrCorrupt, x.key, x.rank, h)
		}
	default:
		switch x.rank {
		case red:
			if x.left.isRed() || x.right.isRed() {
				return 0, 0, fmt.Errorf("%w: red key %v has a red child", ErrCorrupt, x.key)
			}
		case black:
		default:
			return 0, 0, fmt.Errorf("%w: key %v has color %d", ErrCorrupt, x.key, x.rank)
		}
		if lh != rh {
			return 0, 0, fmt.Errorf("%w: key %v has black heights %d and %d", ErrCorrupt, x.key, lh, rh)
		}
		h = lh
		if x.rank == black {
			h++
		}
	}
	return n, h, nil
}
