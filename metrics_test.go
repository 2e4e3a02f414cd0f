// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growable

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics("growable", reg)
	require.NoError(t, err)

	cfg := Config{InitialCapacity: 1, Metrics: m}
	stack := cfg.Observer("stack")
	queue := cfg.Observer("queue")

	stack.Grew(1, 2, 1)
	stack.Grew(2, 4, 2)
	stack.Shrank(4, 2, 1)
	queue.Shrank(8, 4, 3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Grows("stack")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Shrinks("stack")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.Grows("queue")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Shrinks("queue")), 0)

	n, err := testutil.GatherAndCount(reg, "growable_buffer_capacity")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one histogram per container kind")

	_, err = NewMetrics("growable", reg)
	require.Error(t, err, "registering duplicate collectors")
}
