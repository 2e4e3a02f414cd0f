// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growable

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// An Observer reports buffer reallocations of a single kind of container to
// the logger and metrics of a [Config]. A nil *Observer is valid and discards
// everything, which is what zero-value containers carry.
type Observer struct {
	kind    string
	log     logging.Logger
	metrics *Metrics
}

// Observer returns an [Observer] for containers of the given kind, e.g.
// "stack" or "queue".
func (c *Config) Observer(kind string) *Observer {
	return &Observer{
		kind:    kind,
		log:     c.Logger(),
		metrics: c.Metrics,
	}
}

// Grew reports that a buffer holding `size` elements was reallocated from
// capacity `from` to `to`.
func (o *Observer) Grew(from, to, size int) {
	o.resized("growing buffer", true, from, to, size)
}

// Shrank is the counterpart of [Observer.Grew].
func (o *Observer) Shrank(from, to, size int) {
	o.resized("shrinking buffer", false, from, to, size)
}

func (o *Observer) resized(msg string, grew bool, from, to, size int) {
	if o == nil {
		return
	}
	o.log.Debug(msg,
		zap.String(kindLabel, o.kind),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("size", size),
	)
	if o.metrics != nil {
		o.metrics.observe(o.kind, grew, to)
	}
}
