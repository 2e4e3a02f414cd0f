// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package stack

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Stack] instances
// in tests. Buffers, including their capacity, are compared but the logger and
// metrics are ignored.
func CmpOpt[T any]() cmp.Option {
	return cmp.Options{
		cmp.AllowUnexported(Stack[T]{}),
		cmpopts.IgnoreFields(Stack[T]{}, "obs"),
	}
}
