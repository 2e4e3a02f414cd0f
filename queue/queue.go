// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements a FIFO queue over a single growable ring buffer.
package queue

import (
	"fmt"
	"strings"

	"github.com/ava-labs/growable"
	"github.com/ava-labs/growable/intmath"
)

const kind = "queue"

// A Queue is a first-in-first-out container. The zero value is an empty queue
// of capacity 1. A Queue MUST NOT be copied by value; use [Queue.Clone] or
// [Queue.CopyFrom] instead. It is not safe for concurrent use.
//
// Elements are stored in a ring so that dequeuing never shifts them. Every
// reallocation compacts the live elements to the front of the new buffer.
type Queue[T any] struct {
	// ring is nil in the zero value, which Cap reports as 1; the first
	// Enqueue allocates it via a grow from 0 to 1.
	ring  []T // len(ring) MUST == cap(ring)
	start int // 0 <= start < max(len(ring), 1); reset to 0 on every resize
	n     int // 0 <= n <= len(ring)
	obs   *growable.Observer
}

// New returns an empty [Queue] that can hold `capacity` elements before its
// first growth. It panics if `capacity < 1`.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("queue.New(%d): capacity < 1", capacity))
	}
	return &Queue[T]{ring: make([]T, capacity)}
}

// NewWithConfig returns an empty [Queue] configured by `cfg`.
func NewWithConfig[T any](cfg growable.Config) (*Queue[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Queue[T]{
		ring: make([]T, cfg.InitialCapacity),
		obs:  cfg.Observer(kind),
	}, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the number of elements the queue can hold before it next grows.
func (q *Queue[T]) Cap() int {
	return max(len(q.ring), 1)
}

func (q *Queue[T]) ringIndex(i int) int {
	return (q.start + i) % len(q.ring)
}

// Enqueue adds `x` to the back of the queue, doubling the buffer if it is
// full.
func (q *Queue[T]) Enqueue(x T) {
	if q.n == len(q.ring) {
		from := len(q.ring)
		to := intmath.Grow(from, growable.ScaleFactor)
		q.resize(to)
		q.obs.Grew(from, to, q.n)
	}
	q.ring[q.ringIndex(q.n)] = x
	q.n++
}

// Dequeue removes and returns the front of the queue. If the queue is empty it
// returns an error wrapping [growable.ErrEmpty] and the queue is unchanged.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: dequeue from %s", growable.ErrEmpty, kind)
	}

	x := q.ring[q.start]
	var zero T
	q.ring[q.start] = zero
	q.start = q.ringIndex(1)
	q.n--
	q.maybeShrink()
	return x, nil
}

// Peek returns the front of the queue without removing it. If the queue is
// empty it returns an error wrapping [growable.ErrEmpty].
func (q *Queue[T]) Peek() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, fmt.Errorf("%w: peek into %s", growable.ErrEmpty, kind)
	}
	return q.ring[q.start], nil
}

func (q *Queue[T]) maybeShrink() {
	from := q.Cap()
	if !intmath.BelowLoad(q.n, from, growable.ScaleFactor) {
		return
	}
	to := intmath.Shrink(from, growable.ScaleFactor, q.n)
	if to == from {
		return
	}
	q.resize(to)
	q.obs.Shrank(from, to, q.n)
}

// resize reallocates the ring to capacity `c`, which MUST be >= q.n, copying
// exactly the live elements into `[0,q.n)` of the new ring. The receiver is
// only modified once the new ring is fully populated.
func (q *Queue[T]) resize(c int) {
	b := make([]T, c)
	q.compactInto(b)
	q.ring = b
	q.start = 0
}

// compactInto copies the live elements, front first, into `b[:q.n]`.
func (q *Queue[T]) compactInto(b []T) {
	if q.n == 0 {
		return
	}
	if end := q.start + q.n; end <= len(q.ring) {
		copy(b, q.ring[q.start:end])
		return
	}
	m := copy(b, q.ring[q.start:])
	copy(b[m:q.n], q.ring[:q.n-m])
}

// Clone returns a deep copy of the queue, including its capacity, that reports
// to the same logger and metrics. Elements themselves are copied by value.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{obs: q.obs}
	c.CopyFrom(q)
	return c
}

// CopyFrom replaces the contents of `q` with a deep copy of `src`, releasing
// its existing buffer. It is a no-op if `src == q`. The receiver's logger and
// metrics are retained.
func (q *Queue[T]) CopyFrom(src *Queue[T]) {
	if src == q {
		return
	}
	b := make([]T, src.Cap())
	copy(b, src.ring)
	q.ring = b
	q.start = src.start
	q.n = src.n
}

// Elements returns a copy of the live elements, from front to back.
func (q *Queue[T]) Elements() []T {
	out := make([]T, q.n)
	q.compactInto(out)
	return out
}

// Describe renders the entire ring, including unused slots, as well as the
// queue's capacity, size and the ring index of the front. It is intended for
// debugging only and its format is not stable.
func (q *Queue[T]) Describe() string {
	live := make([]bool, q.Cap())
	for i := range q.n {
		live[q.ringIndex(i)] = true
	}

	var b strings.Builder
	b.WriteString("buffer: [")
	for i, isLive := range live {
		if i > 0 {
			b.WriteByte(' ')
		}
		if isLive {
			fmt.Fprintf(&b, "%v", q.ring[i])
		} else {
			b.WriteByte('_')
		}
	}
	fmt.Fprintf(&b, "] capacity: %d size: %d start: %d", q.Cap(), q.n, q.start)
	return b.String()
}
