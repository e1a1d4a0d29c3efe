// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// countingCompiler counts the compilations delegated to the wrapped compiler.
type countingCompiler struct {
	next  Compiler
	calls atomic.Int64
}

func newCountingCompiler() *countingCompiler {
	return &countingCompiler{next: DefaultCompiler}
}

func (c *countingCompiler) Compile(path string, flags Flags) (Compiled, error) {
	c.calls.Add(1)
	return c.next.Compile(path, flags)
}

func newTestMatcher(opts ...Option) (*Matcher, *countingCompiler) {
	compiler := newCountingCompiler()
	opts = append([]Option{WithCompiler(compiler), WithLogger(discardLogger)}, opts...)
	return MustNew(opts...), compiler
}
