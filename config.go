// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growable

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
)

// Config configures a container at construction.
type Config struct {
	// InitialCapacity is the number of elements the buffer can hold before
	// its first growth. It MUST be at least 1.
	InitialCapacity int
	// Log receives a Debug entry for every resize. If nil, [logging.NoLog]
	// is used.
	Log logging.Logger
	// Metrics, if non-nil, records resize events.
	Metrics *Metrics
}

// DefaultConfig returns a Config with capacity 1 and no observability.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 1,
		Log:             logging.NoLog{},
	}
}

// Validate returns an error wrapping [ErrInvalidCapacity] if the initial
// capacity is less than 1.
func (c *Config) Validate() error {
	if c.InitialCapacity < 1 {
		return fmt.Errorf("%w: initial capacity (%d) is less than 1", ErrInvalidCapacity, c.InitialCapacity)
	}
	return nil
}

// Logger returns c.Log, or [logging.NoLog] if it is nil.
func (c *Config) Logger() logging.Logger {
	if c.Log == nil {
		return logging.NoLog{}
	}
	return c.Log
}
