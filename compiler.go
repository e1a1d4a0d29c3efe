// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"strconv"

	"github.com/aleksandr-shukletcov/stencil-router/pattern"
)

// Flags are the compilation flags of a route pattern. Together with the pattern string, they
// identify a [Compiled] matcher in the pattern cache.
type Flags struct {
	// End requires the pattern to match the whole pathname.
	End bool
	// Strict makes a trailing slash significant.
	Strict bool
}

func (f Flags) key() string {
	return strconv.FormatBool(f.End) + strconv.FormatBool(f.Strict)
}

// Compiled is a reusable matcher for a route pattern. Implementations must be immutable since a
// single instance is shared by every match using the same pattern and flags.
type Compiled interface {
	// Exec matches candidate and returns the matched substring with one capture per key.
	Exec(candidate string) (pattern.Result, bool)
	// Keys returns the parameter keys, positionally matching the captures.
	Keys() []pattern.Key
}

// Compiler turns a route pattern into a [Compiled] matcher.
type Compiler interface {
	Compile(path string, flags Flags) (Compiled, error)
}

// CompilerFunc is an adapter to allow the use of ordinary functions as [Compiler].
type CompilerFunc func(path string, flags Flags) (Compiled, error)

// Compile calls f(path, flags).
func (f CompilerFunc) Compile(path string, flags Flags) (Compiled, error) {
	return f(path, flags)
}

// DefaultCompiler compiles patterns with the [pattern] package. Matching is case-insensitive.
var DefaultCompiler Compiler = CompilerFunc(compilePattern)

func compilePattern(path string, flags Flags) (Compiled, error) {
	re, err := pattern.Compile(path, pattern.Options{End: flags.End, Strict: flags.Strict})
	if err != nil {
		return nil, err
	}
	return re, nil
}
