// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap

import (
	"bytes"
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jba/treemap/rng"
)

type Interface[K, V any] interface {
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Scan(rng.Range[K]) iter.Seq2[K, V]
	Delete(key K) bool
	Get(key K) (V, bool)
	Set(key K, val V) (V, bool)
	Min() (K, bool)
	Max() (K, bool)
	Len() int
	Check() error
}

func permute(m Interface[int, int], n int) (perm, slice []int) {
	perm = rand.Perm(n)
	slice = make([]int, 2*n+1)
	for i, x := range perm {
		m.Set(2*x+1, i+1)
		slice[2*x+1] = i + 1
	}
	// Overwrite-Set half the entries.
	for i, x := range perm[:len(perm)/2] {
		m.Set(2*x+1, i+100)
		slice[2*x+1] = i + 100
	}
	return perm, slice
}

func rootOf[K cmp.Ordered, V any](m Interface[K, V]) *node[K, V] {
	switch m := m.(type) {
	case *Map[K, V]:
		return m.root
	case *MapFunc[K, V]:
		return m.root
	default:
		panic("bad map type")
	}
}

func dump(m Interface[int, int]) string {
	var buf bytes.Buffer
	var walk func(*node[int, int])
	walk = func(x *node[int, int]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%d[%d] ", x.key, x.rank)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(rootOf(m))
	return buf.String()
}

// test runs f for both map types under both balancing schemes.
func test(t *testing.T, f func(*testing.T, func() Interface[int, int])) {
	for _, b := range []Balance{RedBlack, AVL} {
		t.Run("Map/"+b.String(), func(t *testing.T) {
			f(t, func() Interface[int, int] { return New[int, int](WithBalance(b)) })
		})
		t.Run("MapFunc/"+b.String(), func(t *testing.T) {
			f(t, func() Interface[int, int] { return NewMapFunc[int, int](cmp.Compare, WithBalance(b)) })
		})
	}
}

func checkTree(t *testing.T, m Interface[int, int]) {
	t.Helper()
	if err := m.Check(); err != nil {
		t.Fatalf("%v\nM: %v", err, dump(m))
	}
}

func TestGet(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(m, N)
			checkTree(t, m)
			for k, want := range slice {
				v, ok := m.Get(k)
				if v != want || ok != (want > 0) {
					t.Fatalf("Get(%d) = %d, %v, want %d, %v\nM: %v", k, v, ok, want, want > 0, dump(m))
				}
			}
		}
	})
}

func TestSet(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		check := func(gotOld int, gotAdded bool) func(int, bool) {
			return func(wantOld int, wantAdded bool) {
				t.Helper()
				if gotOld != wantOld || gotAdded != wantAdded {
					t.Errorf("got %d, %t, want %d, %t", gotOld, gotAdded, wantOld, wantAdded)
				}
			}
		}

		m := newMap()
		check(m.Set(1, 10))(0, true)
		check(m.Set(2, 20))(0, true)
		check(m.Set(1, 5))(10, false)
		check(m.Set(1, 8))(5, false)
		if m.Len() != 2 {
			t.Errorf("m.Len() = %d, want 2", m.Len())
		}
	})
}

func TestMin(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 11 {
			m := newMap()
			permute(m, N)
			have, ok := m.Min()
			want := 1
			wok := true
			if N == 0 {
				want = 0
				wok = false
			}
			if have != want || ok != wok {
				t.Errorf("N=%d Min() returned %d, %t want %d, %t", N, have, ok, want, wok)
			}
		}
	})
}

func TestMax(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 11 {
			m := newMap()
			permute(m, N)
			have, ok := m.Max()
			want := 2*N - 1
			wok := true
			if N == 0 {
				want = 0
				wok = false
			}
			if have != want || ok != wok {
				t.Errorf("N=%d Max() returned %d, %t want %d, %t", N, have, ok, want, wok)
			}
		}
	})
}

func TestAll(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(m, N)
			var have []int
			for k, v := range m.All() {
				if v != slice[k] {
					t.Errorf("All() returned %d, %d want %d, %d", k, v, k, slice[k])
				}
				have = append(have, k)
				if len(have) > N+5 { // too many; looping?
					break
				}
			}
			want := nonzeroIndexes(slice)
			if !slices.Equal(have, want) {
				t.Errorf("All() = %v, want %v", have, want)
			}
		}
	})
}

func TestBackward(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 11 {
			m := newMap()
			_, slice := permute(m, N)
			var have []int
			for k, v := range m.Backward() {
				if v != slice[k] {
					t.Errorf("Backward() returned %d, %d want %d, %d", k, v, k, slice[k])
				}
				have = append(have, k)
				if len(have) > N+5 { // too many; looping?
					break
				}
			}
			want := nonzeroIndexes(slice)
			slices.Reverse(want)
			if !slices.Equal(have, want) {
				t.Errorf("Backward() = %v, want %v", have, want)
			}
		}
	})
}

func TestScan(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		check := func(m Interface[int, int], slice []int, r rng.Range[int]) {
			t.Helper()
			var have []int
			for k, v := range m.Scan(r) {
				if v != slice[k] {
					t.Errorf("Scan(%s) returned %d, %d want %d, %d", r, k, v, k, slice[k])
				}
				have = append(have, k)
				if len(have) > len(slice)+5 { // too many; looping?
					break
				}
			}
			want := keep(slice, func(k int) bool { return r.Contains(cmp.Compare[int], k) })
			if r.IsBackwards() {
				slices.Reverse(want)
			}
			if !slices.Equal(have, want) {
				t.Errorf("Scan(%s) = %v, want %v", r, have, want)
			}
		}

		for N := range 11 {
			m := newMap()
			_, slice := permute(m, N)
			for r := range ranges(len(slice)) {
				check(m, slice, r)
				check(m, slice, r.Backwards())
			}
		}
	})
}

func TestDelete(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		checkLen := func(m Interface[int, int], n int) {
			t.Helper()
			if m.Len() != n {
				t.Errorf("m.Len() = %d, want %d", m.Len(), n)
			}
		}

		for N := range 11 {
			m := newMap()
			checkLen(m, 0)
			_, slice := permute(m, N)
			checkLen(m, N)
			wantLen := N
			for _, x := range rand.Perm(len(slice)) {
				if m.Delete(x) {
					wantLen--
				}
				checkLen(m, wantLen)
				checkTree(t, m)
				slice[x] = 0
				var have []int
				for k := range m.All() {
					have = append(have, k)
				}
				want := nonzeroIndexes(slice)
				if !slices.Equal(have, want) {
					t.Errorf("after Delete(%v), All() = %v, want %v", x, have, want)
				}
			}
		}
	})
}

func TestClone(t *testing.T) {
	equal := func(i1, i2 Interface[int, int]) bool {
		if i1.Len() != i2.Len() {
			return false
		}
		next, stop := iter.Pull2(i2.All())
		defer stop()
		for k1, v1 := range i1.All() {
			k2, v2, ok := next()
			if !ok || k1 != k2 || v1 != v2 {
				return false
			}
		}
		return true
	}

	for _, b := range []Balance{RedBlack, AVL} {
		t.Run("Map/"+b.String(), func(t *testing.T) {
			for N := range 11 {
				m := New[int, int](WithBalance(b))
				permute(m, N)
				c := m.Clone()
				if !equal(m, c) {
					t.Errorf("N=%d: not equal", N)
				}
				checkTree(t, c)
				if c.bal != b {
					t.Errorf("N=%d: clone has balance %v, want %v", N, c.bal, b)
				}
			}
		})
		t.Run("MapFunc/"+b.String(), func(t *testing.T) {
			for N := range 11 {
				m := NewMapFunc[int, int](func(i1, i2 int) int { return cmp.Compare(i1, i2) }, WithBalance(b))
				permute(m, N)
				c := m.Clone()
				if !equal(m, c) {
					t.Errorf("N=%d: not equal", N)
				}
				checkTree(t, c)
			}
		})
	}
}

func TestAllDelete(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for _, mode := range []string{"prev", "current", "next"} {
			for N := range 8 {
				for target := 1; target <= 2*N-1; target += 2 {
					m := newMap()
					_, slice := permute(m, N)
					var have []int
					for k := range m.All() {
						if k == target {
							deleteAt(m, k, mode, slice, true)
						}
						have = append(have, k)
					}
					want := nonzeroIndexes(slice)
					if !slices.Equal(have, want) {
						t.Errorf("%s: All() deleting at %d = %v, want %v", mode, target, have, want)
					}
					checkTree(t, m)
				}
			}
		}
	})
}

func TestBackwardDelete(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for _, mode := range []string{"prev", "current", "next"} {
			for N := range 8 {
				for target := 1; target <= 2*N-1; target += 2 {
					m := newMap()
					_, slice := permute(m, N)
					var have []int
					for k := range m.Backward() {
						if k == target {
							deleteAt(m, k, mode, slice, false)
						}
						have = append(have, k)
					}
					want := nonzeroIndexes(slice)
					slices.Reverse(want)
					if !slices.Equal(have, want) {
						t.Errorf("%s: Backward() deleting at %d = %v, want %v", mode, target, have, want)
					}
					checkTree(t, m)
				}
			}
		}
	})
}

// deleteAt deletes keys near k while iterating and records in slice the
// keys that the iteration will no longer see.
// Keys already visited stay in slice.
func deleteAt(m Interface[int, int], k int, mode string, slice []int, forwards bool) {
	var keys []int
	switch mode {
	case "prev":
		keys = []int{k - 2, k - 4}
	case "current":
		keys = []int{k}
	case "next":
		keys = []int{k + 2, k + 4}
	}
	for _, d := range keys {
		m.Delete(d)
		if d < 0 || d >= len(slice) {
			continue
		}
		if (forwards && d > k) || (!forwards && d < k) {
			slice[d] = 0
		}
	}
}

func ranges(n int) iter.Seq[rng.Range[int]] {
	return func(yield func(rng.Range[int]) bool) {
		for hi := range n {
			for lo := range hi + 1 {
				for _, r := range []rng.Range[int]{
					rng.From(lo).To(hi),
					rng.From(lo).Below(hi),
					rng.Above(lo).To(hi),
					rng.Above(lo).Below(hi),
					rng.From(lo),
					rng.Above(lo),
					rng.To(hi),
					rng.Below(hi),
				} {
					if !yield(r) {
						return
					}
				}
			}
		}
		// Interval past the end.
		if !yield(rng.Above(n)) {
			return
		}
		// Yield the infinite interval even if n == 0.
		yield(rng.All[int]())
	}
}

func keep(s []int, f func(int) bool) []int {
	var r []int
	for k, v := range s {
		if v != 0 && f(k) {
			r = append(r, k)
		}
	}
	return r
}

func nonzeroIndexes(s []int) []int {
	var r []int
	for k, v := range s {
		if v != 0 {
			r = append(r, k)
		}
	}
	return r
}
