// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growable

import "errors"

var (
	// ErrEmpty is returned when removing or peeking from a container that
	// holds no elements. The container is not modified.
	ErrEmpty = errors.New("empty container")
	// ErrInvalidCapacity is returned by [Config.Validate] if the initial
	// capacity is less than 1.
	ErrInvalidCapacity = errors.New("invalid capacity")
)
