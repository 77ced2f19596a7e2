// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides ranges: representations of sequences of ordered values.
package rng

import (
	"fmt"
	"strings"
)

// Range is a range of values of type T.
// T need not be ordered; that is, it is not constrained by [cmp.Ordered].
// It is up to the user to assign an ordering; Range represents the bounds
// of the range and, given a comparison function, tests values against them.
//
// The zero Range is an empty range.
type Range[T any] struct {
	lo, hi         T
	inclLo, inclHi bool
	infLo, infHi   bool
	rev            bool
}

func (r Range[T]) String() string {
	var b strings.Builder
	if r.infLo {
		b.WriteString("(-∞")
	} else {
		if r.inclLo {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, r.lo)
	}
	b.WriteString(", ")
	if r.infHi {
		b.WriteString("∞)")
	} else {
		fmt.Fprint(&b, r.hi)
		if r.inclHi {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	if r.rev {
		b.WriteString(" backwards")
	}
	return b.String()
}

// IsBackwards reports whether r is traversed from high to low.
func (r Range[T]) IsBackwards() bool { return r.rev }

// Low returns the low bound of r, whether r is unbounded below,
// and whether the bound belongs to r.
func (r Range[T]) Low() (v T, infinite, includes bool) {
	return r.lo, r.infLo, r.inclLo
}

// High returns the high bound of r, whether r is unbounded above,
// and whether the bound belongs to r.
func (r Range[T]) High() (v T, infinite, includes bool) {
	return r.hi, r.infHi, r.inclHi
}

// All returns the range of all values, (-∞, ∞).
func All[T any]() Range[T] {
	return Range[T]{infLo: true, infHi: true}
}

// From returns [t, ∞).
func From[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: true, infHi: true}
}

// Above returns (t, ∞).
func Above[T any](t T) Range[T] {
	return Range[T]{lo: t, inclLo: false, infHi: true}
}

// To returns (-∞, t].
func To[T any](t T) Range[T] {
	return Range[T]{infLo: true, hi: t, inclHi: true}
}

// Below returns (-∞, t).
func Below[T any](t T) Range[T] {
	return Range[T]{infLo: true, hi: t}
}

// Below replaces r's unbounded high end by t, exclusive: ..., t).
// It panics if r already has a high bound.
func (r Range[T]) Below(t T) Range[T] {
	r.setHigh(t, false)
	return r
}

// To replaces r's unbounded high end by t, inclusive: ..., t].
// It panics if r already has a high bound.
func (r Range[T]) To(t T) Range[T] {
	r.setHigh(t, true)
	return r
}

func (r *Range[T]) setHigh(t T, incl bool) {
	if !r.infHi {
		panic("rng: range already has high bound")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = incl
}

// Backwards returns r traversed from high to low.
func (r Range[T]) Backwards() Range[T] {
	r.rev = true
	return r
}

// AboveLow reports whether v satisfies r's low bound under cmp.
func (r Range[T]) AboveLow(cmp func(a, b T) int, v T) bool {
	if r.infLo {
		return true
	}
	c := cmp(v, r.lo)
	return c > 0 || (c == 0 && r.inclLo)
}

// BelowHigh reports whether v satisfies r's high bound under cmp.
func (r Range[T]) BelowHigh(cmp func(a, b T) int, v T) bool {
	if r.infHi {
		return true
	}
	c := cmp(v, r.hi)
	return c < 0 || (c == 0 && r.inclHi)
}

// Contains reports whether v is in r under cmp.
func (r Range[T]) Contains(cmp func(a, b T) int, v T) bool {
	return r.AboveLow(cmp, v) && r.BelowHigh(cmp, v)
}
