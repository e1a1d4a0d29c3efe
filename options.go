// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a [Matcher].
type Option interface {
	apply(*config) error
}

type config struct {
	compiler  Compiler
	logger    *slog.Logger
	limit     int
	reg       prometheus.Registerer
	namespace string
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error {
	return o(c)
}

// WithCacheLimit sets the maximum number of compiled patterns retained by the matcher. Once the limit is
// reached, new patterns are compiled on every match. A limit of 0 disables caching. The default is
// [DefaultCacheLimit].
func WithCacheLimit(limit int) Option {
	return optionFunc(func(c *config) error {
		if limit < 0 {
			return fmt.Errorf("%w: cache limit must be positive or zero", ErrInvalidConfig)
		}
		c.limit = limit
		return nil
	})
}

// WithCompiler registers the [Compiler] used to turn route patterns into matchers. By default, the
// [DefaultCompiler] is used.
func WithCompiler(compiler Compiler) Option {
	return optionFunc(func(c *config) error {
		if compiler == nil {
			return fmt.Errorf("%w: compiler cannot be nil", ErrInvalidConfig)
		}
		c.compiler = compiler
		return nil
	})
}

// WithLogger sets the logger used to report pattern compilations (debug level) and the pattern cache
// reaching its limit (warn level). By default, warnings are written to stdout.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(c *config) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", ErrInvalidConfig)
		}
		c.logger = logger
		return nil
	})
}

// WithPrometheusRegisterer exports the pattern cache hits, misses, overflows and size as prometheus metrics
// registered with reg under the given namespace. Registering two matchers with the same namespace on the same
// registerer fails with an error that is [ErrInvalidConfig].
func WithPrometheusRegisterer(reg prometheus.Registerer, namespace string) Option {
	return optionFunc(func(c *config) error {
		if reg == nil {
			return fmt.Errorf("%w: prometheus registerer cannot be nil", ErrInvalidConfig)
		}
		c.reg = reg
		c.namespace = namespace
		return nil
	})
}
