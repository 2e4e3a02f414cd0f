// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides the integer arithmetic behind buffer resizing.
package intmath

import "golang.org/x/exp/constraints"

// Grow returns the capacity that a full buffer of capacity `c` is reallocated
// to, i.e. `c*factor`, treating a zero capacity as 1 so that zero-value
// containers can grow.
func Grow[T constraints.Integer](c, factor T) T {
	if c == 0 {
		return 1
	}
	return c * factor
}

// Shrink returns `max(c/factor, floor, 1)`, the truncated quotient bounded
// below by both `floor` and 1.
func Shrink[T constraints.Integer](c, factor, floor T) T {
	return max(c/factor, floor, 1)
}

// BelowLoad reports whether `size/c < 1/factor` when evaluated with exact,
// rational arithmetic. It is equivalent to `size*factor < c` but never
// overflows. The denominators MUST be positive.
func BelowLoad[T constraints.Integer](size, c, factor T) bool {
	quo, rem := c/factor, c%factor
	return size < quo || (size == quo && rem != 0)
}
