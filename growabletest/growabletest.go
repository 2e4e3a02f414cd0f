// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package growabletest provides test helpers for the growable containers.
package growabletest

import (
	"errors"
	"testing"

	"github.com/ava-labs/growable"
)

// Drain calls `remove` until it returns an error, which MUST be
// [growable.ErrEmpty], and returns all values in the order they were removed.
func Drain[T any](tb testing.TB, remove func() (T, error)) []T {
	tb.Helper()
	var got []T
	for {
		x, err := remove()
		if errors.Is(err, growable.ErrEmpty) {
			return got
		}
		if err != nil {
			tb.Fatalf("unexpected error while draining: %v", err)
		}
		got = append(got, x)
	}
}
