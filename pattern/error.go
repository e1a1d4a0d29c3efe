// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package pattern

import (
	"errors"
	"fmt"
)

var ErrInvalidPattern = errors.New("invalid pattern")

// SyntaxError is returned when the regular expression built from a pattern does not compile,
// usually because of a custom segment expression.
type SyntaxError struct {
	// Pattern is the route pattern given to Compile.
	Pattern string
	// Source is the generated regular expression.
	Source string
	// Err is the error reported by the regexp package.
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %q: %s", ErrInvalidPattern, e.Pattern, e.Err)
}

// Unwrap returns the sentinel value [ErrInvalidPattern] and the underlying regexp error.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}
