// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack implements a LIFO stack over a single growable buffer.
package stack

import (
	"fmt"
	"strings"

	"github.com/ava-labs/growable"
	"github.com/ava-labs/growable/intmath"
)

const kind = "stack"

// A Stack is a last-in-first-out container. The zero value is an empty stack
// of capacity 1. A Stack MUST NOT be copied by value; use [Stack.Clone] or
// [Stack.CopyFrom] instead. It is not safe for concurrent use.
type Stack[T any] struct {
	// buf is nil in the zero value, which Cap reports as 1; the first Push
	// allocates it.
	buf []T // len(buf) MUST == cap(buf); live elements are buf[:n]
	n   int // 0 <= n <= len(buf)
	obs *growable.Observer
}

// New returns an empty [Stack] that can hold `capacity` elements before its
// first growth. It panics if `capacity < 1`.
func New[T any](capacity int) *Stack[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("stack.New(%d): capacity < 1", capacity))
	}
	return &Stack[T]{buf: make([]T, capacity)}
}

// NewWithConfig returns an empty [Stack] configured by `cfg`.
func NewWithConfig[T any](cfg growable.Config) (*Stack[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Stack[T]{
		buf: make([]T, cfg.InitialCapacity),
		obs: cfg.Observer(kind),
	}, nil
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the number of elements the stack can hold before it next grows.
func (s *Stack[T]) Cap() int {
	return max(len(s.buf), 1)
}

// Push adds `x` to the top of the stack, doubling the buffer if it is full.
func (s *Stack[T]) Push(x T) {
	if s.n == len(s.buf) {
		from := len(s.buf)
		to := intmath.Grow(from, growable.ScaleFactor)
		s.resize(to)
		s.obs.Grew(from, to, s.n)
	}
	s.buf[s.n] = x
	s.n++
}

// Pop removes and returns the top of the stack. If the stack is empty it
// returns an error wrapping [growable.ErrEmpty] and the stack is unchanged.
func (s *Stack[T]) Pop() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop from %s", growable.ErrEmpty, kind)
	}

	s.n--
	x := s.buf[s.n]
	var zero T
	s.buf[s.n] = zero
	s.maybeShrink()
	return x, nil
}

// Peek returns the top of the stack without removing it. If the stack is
// empty it returns an error wrapping [growable.ErrEmpty].
func (s *Stack[T]) Peek() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek into %s", growable.ErrEmpty, kind)
	}
	return s.buf[s.n-1], nil
}

func (s *Stack[T]) maybeShrink() {
	from := s.Cap()
	if !intmath.BelowLoad(s.n, from, growable.ScaleFactor) {
		return
	}
	to := intmath.Shrink(from, growable.ScaleFactor, s.n)
	if to == from {
		return
	}
	s.resize(to)
	s.obs.Shrank(from, to, s.n)
}

// resize reallocates the buffer to capacity `c`, which MUST be >= s.n. The
// receiver is only modified once the new buffer is fully populated.
func (s *Stack[T]) resize(c int) {
	b := make([]T, c)
	copy(b, s.buf[:s.n])
	s.buf = b
}

// Clone returns a deep copy of the stack, including its capacity, that reports
// to the same logger and metrics. Elements themselves are copied by value.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{obs: s.obs}
	c.CopyFrom(s)
	return c
}

// CopyFrom replaces the contents of `s` with a deep copy of `src`, releasing
// its existing buffer. It is a no-op if `src == s`. The receiver's logger and
// metrics are retained.
func (s *Stack[T]) CopyFrom(src *Stack[T]) {
	if src == s {
		return
	}
	b := make([]T, src.Cap())
	copy(b, src.buf[:src.n])
	s.buf = b
	s.n = src.n
}

// Elements returns a copy of the live elements, from bottom to top.
func (s *Stack[T]) Elements() []T {
	out := make([]T, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// Describe renders the entire buffer, including unused slots, as well as the
// stack's capacity and size. It is intended for debugging only and its format
// is not stable.
func (s *Stack[T]) Describe() string {
	var b strings.Builder
	b.WriteString("buffer: [")
	for i := range s.Cap() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i < s.n {
			fmt.Fprintf(&b, "%v", s.buf[i])
		} else {
			b.WriteByte('_')
		}
	}
	fmt.Fprintf(&b, "] capacity: %d size: %d", s.Cap(), s.n)
	return b.String()
}
