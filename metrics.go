// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "pattern_cache"

// cacheMetrics exports the pattern cache activity to prometheus. A nil *cacheMetrics records nothing.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	overflows prometheus.Counter
	entries   prometheus.Gauge
}

func newCacheMetrics(reg prometheus.Registerer, namespace string) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "hits_total",
			Help:      "Total number of route patterns served from the cache",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "misses_total",
			Help:      "Total number of route patterns compiled on a cache miss",
		}),
		overflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "overflows_total",
			Help:      "Total number of compiled route patterns not cached because the cache was full",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "entries",
			Help:      "Current number of compiled route patterns in the cache",
		}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{m.hits, m.misses, m.overflows, m.entries} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: unable to register pattern cache metrics: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return m, nil
}

func (m *cacheMetrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *cacheMetrics) overflow() {
	if m != nil {
		m.overflows.Inc()
	}
}

func (m *cacheMetrics) stored(entries int) {
	if m != nil {
		m.entries.Set(float64(entries))
	}
}
