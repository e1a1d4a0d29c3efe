// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

// Package pattern compiles route patterns such as "/users/:id" or "/files/:path*" into
// regular expressions and their ordered list of parameter keys.
//
// The supported syntax is:
//   - ":name" a named segment matching everything up to the next delimiter.
//   - ":name(re)" a named segment matching the custom expression re.
//   - "(re)" an unnamed segment, keyed by its ordinal ("0", "1", ...).
//   - "?", "*" and "+" after a segment make it optional, zero-or-more or one-or-more.
//   - "*" alone matches anything, including delimiters.
//   - "\x" escapes the character x.
//
// A segment is prefixed by the "/" or "." that immediately precedes it, which is
// consumed together with the segment when it is optional or repeated.
package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

const defaultDelimiter = "/"

// tokenRegexp captures, in order: an escaped character, the segment prefix, the key name,
// the custom key pattern, an unnamed group pattern, the modifier and a bare asterisk.
var tokenRegexp = regexp.MustCompile(`(\\.)|([/.])?(?:(?:\:(\w+)(?:\(((?:\\.|[^\\()])+)\))?|\(((?:\\.|[^\\()])+)\))([+*?])?|(\*))`)

// Key describes a parameter segment of a pattern.
type Key struct {
	// Name is the parameter name, or its ordinal for unnamed groups.
	Name string
	// Prefix is the "/" or "." consumed with the segment, if any.
	Prefix string
	// Delimiter is the character a default segment pattern may not contain.
	Delimiter string
	// Optional is true for the "?" and "*" modifiers.
	Optional bool
	// Repeat is true for the "*" and "+" modifiers.
	Repeat bool
	// Partial is true when the prefix is not followed by another prefix, as in "/:a.:b".
	Partial bool
	// Asterisk is true for a bare "*" segment.
	Asterisk bool
	// Pattern is the regular expression matching a single occurrence of the segment.
	Pattern string
}

// Token is either a literal piece of the pattern or a parameter key.
type Token struct {
	Literal string
	Key     *Key
}

// IsKey reports whether the token is a parameter.
func (t Token) IsKey() bool {
	return t.Key != nil
}

// Parse splits a pattern into its literal and parameter tokens. Parse never fails: text that
// does not form a segment is kept literally.
func Parse(path string) []Token {
	return parse(path, defaultDelimiter)
}

// parse is like Parse, with the delimiter of segments that have no prefix.
func parse(path, defaultDelim string) []Token {
	var (
		tokens  []Token
		sb      strings.Builder
		index   int
		ordinal int
	)

	for _, loc := range tokenRegexp.FindAllStringSubmatchIndex(path, -1) {
		sb.WriteString(path[index:loc[0]])
		index = loc[1]

		// Escaped character, keep what follows the backslash.
		if loc[2] >= 0 {
			sb.WriteString(path[loc[2]+1 : loc[3]])
			continue
		}

		if sb.Len() > 0 {
			tokens = append(tokens, Token{Literal: sb.String()})
			sb.Reset()
		}

		prefix := group(path, loc, 2)
		name := group(path, loc, 3)
		capture := group(path, loc, 4)
		unnamed := group(path, loc, 5)
		modifier := group(path, loc, 6)
		asterisk := loc[14] >= 0

		delimiter := defaultDelim
		if prefix != "" {
			delimiter = prefix
		}

		if name == "" {
			name = strconv.Itoa(ordinal)
			ordinal++
		}

		var pattern string
		switch {
		case capture != "":
			pattern = escapeGroup(capture)
		case unnamed != "":
			pattern = escapeGroup(unnamed)
		case asterisk:
			pattern = ".*"
		default:
			pattern = "[^" + escapeString(delimiter) + "]+?"
		}

		tokens = append(tokens, Token{Key: &Key{
			Name:      name,
			Prefix:    prefix,
			Delimiter: delimiter,
			Optional:  modifier == "?" || modifier == "*",
			Repeat:    modifier == "+" || modifier == "*",
			Partial:   prefix != "" && index < len(path) && path[index:index+1] != prefix,
			Asterisk:  asterisk,
			Pattern:   pattern,
		}})
	}

	sb.WriteString(path[index:])
	if sb.Len() > 0 {
		tokens = append(tokens, Token{Literal: sb.String()})
	}

	return tokens
}

// group returns the n-th submatch of path, or an empty string if it did not participate.
func group(path string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return path[loc[2*n]:loc[2*n+1]]
}

// escapeString quotes every regular expression metacharacter of s.
func escapeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(`.+*?=^!:${}()[]|/\`, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// escapeGroup quotes the characters of a custom segment pattern that would otherwise open a group
// or anchor the expression.
func escapeGroup(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(`=!:$/()`, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
