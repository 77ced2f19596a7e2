// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

// Red-black balancing, following Cormen et al., "Introduction to
// Algorithms", chapter 13. Nil children count as black leaves.

// rbInsertFixup restores the red-black properties after z,
// a new red leaf, has been linked into the tree.
func (t *base[K, V]) rbInsertFixup(z *node[K, V]) {
	for z.parent.isRed() {
		p := z.parent
		g := p.parent // p is red, so it is not the root
		if p == g.left {
			if u := g.right; u.isRed() {
				p.rank, u.rank, g.rank = black, black, red
				z = g
				continue
			}
			if z == p.right {
				z = p
				t.rotateLeft(z)
				p = z.parent
			}
			p.rank, g.rank = black, red
			t.rotateRight(g)
		} else {
			if u := g.left; u.isRed() {
				p.rank, u.rank, g.rank = black, black, red
				z = g
				continue
			}
			if z == p.left {
				z = p
				t.rotateRight(z)
				p = z.parent
			}
			p.rank, g.rank = black, red
			t.rotateLeft(g)
		}
	}
	t.root.rank = black
}

// rbEraseFixup resolves the missing black on the path through x after
// a black node has been unlinked. x may be nil, so its parent xp is
// passed separately.
func (t *base[K, V]) rbEraseFixup(x, xp *node[K, V]) {
	for x != t.root && !x.isRed() {
		if x == xp.left {
			w := xp.right // not nil: the other side has black height ≥ 1
			if w.isRed() {
				w.rank, xp.rank = black, red
				t.rotateLeft(xp)
				w = xp.right
			}
			if !w.left.isRed() && !w.right.isRed() {
				w.rank = red
				x, xp = xp, xp.parent
				continue
			}
			if !w.right.isRed() {
				w.left.rank, w.rank = black, red
				t.rotateRight(w)
				w = xp.right
			}
			w.rank, xp.rank = xp.rank, black
			w.right.rank = black
			t.rotateLeft(xp)
			x, xp = t.root, nil
		} else {
			w := xp.left
			if w.isRed() {
				w.rank, xp.rank = black, red
				t.rotateRight(xp)
				w = xp.left
			}
			if !w.left.isRed() && !w.right.isRed() {
				w.rank = red
				x, xp = xp, xp.parent
				continue
			}
			if !w.left.isRed() {
				w.right.rank, w.rank = black, red
				t.rotateLeft(w)
				w = xp.left
			}
			w.rank, xp.rank = xp.rank, black
			w.left.rank = black
			t.rotateRight(xp)
			x, xp = t.root, nil
		}
	}
	if x != nil {
		x.rank = black
	}
}
