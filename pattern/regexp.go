// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package pattern

import (
	"regexp"
	"strings"
)

// Options controls how a pattern is turned into a regular expression.
type Options struct {
	// End requires the pattern to match up to the end of the input. Otherwise the
	// pattern matches a prefix of the input ending on a delimiter.
	End bool
	// Strict makes a trailing delimiter significant. Otherwise one trailing delimiter
	// is tolerated in the input.
	Strict bool
	// Sensitive enables case-sensitive matching.
	Sensitive bool
	// Delimiter is the segment delimiter, "/" when empty.
	Delimiter string
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return defaultDelimiter
	}
	return o.Delimiter
}

// Capture is the value captured for a single key. Defined is false when the key is optional
// and did not participate in the match.
type Capture struct {
	Value   string
	Defined bool
}

// Result is a successful match. Captures has one entry per key, in key order.
type Result struct {
	Match    string
	Captures []Capture
}

// Regexp is a compiled pattern. It is immutable and safe for concurrent use.
type Regexp struct {
	re   *regexp.Regexp
	keys []Key
	// lookahead is set when the last group of re holds a delimiter that only asserts
	// where the match stops and must not be reported as part of it.
	lookahead bool
}

// Compile parses path and builds the regular expression matching it.
func Compile(path string, opts Options) (*Regexp, error) {
	return FromTokens(path, parse(path, opts.delimiter()), opts)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(path string, opts Options) *Regexp {
	re, err := Compile(path, opts)
	if err != nil {
		panic(err)
	}
	return re
}

// FromTokens builds the regular expression for already parsed tokens. The path is only
// used to report errors.
func FromTokens(path string, tokens []Token, opts Options) (*Regexp, error) {
	var sb strings.Builder
	keys := make([]Key, 0, len(tokens))

	for _, token := range tokens {
		if !token.IsKey() {
			sb.WriteString(escapeString(token.Literal))
			continue
		}

		key := *token.Key
		keys = append(keys, key)

		prefix := escapeString(key.Prefix)
		capture := "(?:" + key.Pattern + ")"
		if key.Repeat {
			capture += "(?:" + prefix + capture + ")*"
		}

		switch {
		case key.Optional && !key.Partial:
			capture = "(?:" + prefix + "(" + capture + "))?"
		case key.Optional:
			capture = prefix + "(" + capture + ")?"
		default:
			capture = prefix + "(" + capture + ")"
		}
		sb.WriteString(capture)
	}

	route := sb.String()
	delimiter := escapeString(opts.delimiter())
	endsWithDelimiter := strings.HasSuffix(route, delimiter)

	// RE2 has no lookahead. A trailing delimiter that may only be followed by the end of input
	// becomes an alternation, and a delimiter that must follow the match is captured in a last
	// group which Exec strips from the reported match.
	var lookahead bool
	switch {
	case opts.End && opts.Strict:
		route += "$"
	case opts.End:
		route = strings.TrimSuffix(route, delimiter) + "(?:" + delimiter + ")?$"
	case opts.Strict && endsWithDelimiter:
	case opts.Strict:
		route += "(?:(" + delimiter + ")|$)"
		lookahead = true
	default:
		route = strings.TrimSuffix(route, delimiter) + "(?:" + delimiter + "$|(" + delimiter + ")|$)"
		lookahead = true
	}

	source := "^" + route
	if !opts.Sensitive {
		source = "(?i)" + source
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &SyntaxError{Pattern: path, Source: source, Err: err}
	}

	return &Regexp{re: re, keys: keys, lookahead: lookahead}, nil
}

// Exec matches s against the compiled pattern.
func (r *Regexp) Exec(s string) (Result, bool) {
	loc := r.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Result{}, false
	}

	end := loc[1]
	if r.lookahead {
		last := len(loc) - 2
		if loc[last] >= 0 {
			end = loc[last]
		}
	}

	captures := make([]Capture, len(r.keys))
	for i := range captures {
		start, stop := loc[2*i+2], loc[2*i+3]
		if start >= 0 {
			captures[i] = Capture{Value: s[start:stop], Defined: true}
		}
	}

	return Result{Match: s[loc[0]:end], Captures: captures}, true
}

// Keys returns the parameter keys in declaration order. The returned slice must not be modified.
func (r *Regexp) Keys() []Key {
	return r.keys
}

// String returns the source of the regular expression.
func (r *Regexp) String() string {
	return r.re.String()
}
