// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package growable holds the pieces shared by the [stack] and [queue]
// packages: the scale factor that drives both buffers' growth and shrinkage,
// the [ErrEmpty] sentinel, and optional observability hooks via [Config].
//
// Each container owns exactly one contiguous buffer whose length always
// equals its capacity. The buffer doubles when an insertion finds it full and
// halves when a removal leaves it less than half full, never dropping below a
// capacity of 1 nor below the number of live elements.
//
// [stack]: https://pkg.go.dev/github.com/ava-labs/growable/stack
// [queue]: https://pkg.go.dev/github.com/ava-labs/growable/queue
package growable

// ScaleFactor is the multiplier applied to a buffer's capacity when it grows,
// and the divisor applied when it shrinks. A buffer shrinks once its load
// factor falls below 1/ScaleFactor.
const ScaleFactor = 2
