// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestGrow(t *testing.T) {
	tests := []struct {
		c, factor, want int
	}{
		{c: 0, factor: 2, want: 1},
		{c: 1, factor: 2, want: 2},
		{c: 2, factor: 2, want: 4},
		{c: 7, factor: 2, want: 14},
		{c: 3, factor: 3, want: 9},
	}

	for _, tt := range tests {
		if got := Grow(tt.c, tt.factor); got != tt.want {
			t.Errorf("Grow[%T](%[1]d, %d) got %d; want %d", tt.c, tt.factor, got, tt.want)
		}
	}
}

func TestShrink(t *testing.T) {
	tests := []struct {
		c, factor, floor, want uint
	}{
		{c: 1, factor: 2, floor: 0, want: 1}, // never below 1
		{c: 2, factor: 2, floor: 0, want: 1},
		{c: 8, factor: 2, floor: 3, want: 4},
		{c: 9, factor: 2, floor: 0, want: 4}, // truncated
		{c: 8, factor: 2, floor: 5, want: 5}, // never below floor
	}

	for _, tt := range tests {
		if got := Shrink(tt.c, tt.factor, tt.floor); got != tt.want {
			t.Errorf("Shrink[%T](%[1]d, %d, %d) got %d; want %d", tt.c, tt.factor, tt.floor, got, tt.want)
		}
	}
}

func TestBelowLoad(t *testing.T) {
	type test struct {
		size, c, factor uint64
		want            bool
	}

	tests := []test{
		{size: 0, c: 1, factor: 2, want: true},
		{size: 1, c: 2, factor: 2, want: false}, // exactly half
		{size: 1, c: 4, factor: 2, want: true},
		{size: 2, c: 4, factor: 2, want: false},
		{size: 2, c: 5, factor: 2, want: true}, // 2/5 < 1/2
		{size: 3, c: 5, factor: 2, want: false},
		{size: math.MaxUint64 / 2, c: math.MaxUint64, factor: 2, want: true}, // must not overflow
	}

	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests
	for range 50 {
		c := uint64(rng.Uint32()) + 1
		size := rng.Uint64N(c + 1)
		tests = append(tests, test{
			size:   size,
			c:      c,
			factor: 2,
			want:   2*size < c,
		})
	}

	for _, tt := range tests {
		if got := BelowLoad(tt.size, tt.c, tt.factor); got != tt.want {
			t.Errorf("BelowLoad[%T](%[1]d, %d, %d) got %t; want %t", tt.size, tt.c, tt.factor, got, tt.want)
		}
	}
}
