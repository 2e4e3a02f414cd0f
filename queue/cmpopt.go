// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package queue

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Queue] instances
// in tests. Two queues are equal if they have the same capacity and logical
// contents, regardless of where in their rings the contents are stored.
func CmpOpt[T any]() cmp.Option {
	return cmp.Options{
		cmp.Transformer("queue", func(q *Queue[T]) (out struct {
			Cap      int
			Elements []T
		}) {
			if q == nil {
				return out
			}
			out.Cap = q.Cap()
			out.Elements = q.Elements()
			return out
		}),
		cmpopts.EquateEmpty(),
	}
}
