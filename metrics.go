// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growable

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// kindLabel distinguishes containers in [Metrics] vectors.
const kindLabel = "container"

// Metrics records buffer reallocations. A single Metrics MAY be shared by any
// number of containers; the underlying collectors are safe for concurrent use
// even though the containers themselves are not.
type Metrics struct {
	grows    *prometheus.CounterVec
	shrinks  *prometheus.CounterVec
	capacity *prometheus.HistogramVec
}

// NewMetrics constructs [Metrics] and registers its collectors with `reg`.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		grows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_grows_total",
			Help:      "Number of times a container buffer was reallocated to a larger capacity.",
		}, []string{kindLabel}),
		shrinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_shrinks_total",
			Help:      "Number of times a container buffer was reallocated to a smaller capacity.",
		}, []string{kindLabel}),
		capacity: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "buffer_capacity",
			Help:      "Capacity of a container buffer immediately after reallocation.",
			Buckets:   prometheus.ExponentialBuckets(1, ScaleFactor, 20),
		}, []string{kindLabel}),
	}
	for _, c := range []prometheus.Collector{m.grows, m.shrinks, m.capacity} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering buffer metrics: %w", err)
		}
	}
	return m, nil
}

// Grows returns the grow counter for the container kind.
func (m *Metrics) Grows(kind string) prometheus.Counter {
	return m.grows.WithLabelValues(kind)
}

// Shrinks returns the shrink counter for the container kind.
func (m *Metrics) Shrinks(kind string) prometheus.Counter {
	return m.shrinks.WithLabelValues(kind)
}

func (m *Metrics) observe(kind string, grew bool, to int) {
	if grew {
		m.Grows(kind).Inc()
	} else {
		m.Shrinks(kind).Inc()
	}
	m.capacity.WithLabelValues(kind).Observe(float64(to))
}
