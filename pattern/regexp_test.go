// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package pattern

import (
	"errors"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Source(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path string
		opts Options
		want string
	}{
		{
			name: "end relaxed",
			path: "/users/:id",
			opts: Options{End: true},
			want: `(?i)^\/users\/((?:[^\/]+?))(?:\/)?$`,
		},
		{
			name: "end strict",
			path: "/users/:id",
			opts: Options{End: true, Strict: true},
			want: `(?i)^\/users\/((?:[^\/]+?))$`,
		},
		{
			name: "prefix relaxed",
			path: "/users/:id",
			want: `(?i)^\/users\/((?:[^\/]+?))(?:\/$|(\/)|$)`,
		},
		{
			name: "prefix strict",
			path: "/users/:id",
			opts: Options{Strict: true},
			want: `(?i)^\/users\/((?:[^\/]+?))(?:(\/)|$)`,
		},
		{
			name: "prefix strict with trailing delimiter",
			path: "/users/",
			opts: Options{Strict: true},
			want: `(?i)^\/users\/`,
		},
		{
			name: "root",
			path: "/",
			want: `(?i)^(?:\/$|(\/)|$)`,
		},
		{
			name: "case sensitive",
			path: "/users",
			opts: Options{End: true, Strict: true, Sensitive: true},
			want: `^\/users$`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			re, err := Compile(tc.path, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, re.String())
		})
	}
}

func TestRegexp_Exec(t *testing.T) {
	t.Parallel()

	type want struct {
		match    string
		captures []Capture
	}

	cases := []struct {
		name  string
		path  string
		opts  Options
		input string
		want  *want
	}{
		{
			name:  "prefix match stops on delimiter",
			path:  "/users/:id",
			input: "/users/1/edit",
			want:  &want{match: "/users/1", captures: []Capture{{Value: "1", Defined: true}}},
		},
		{
			name:  "prefix match keeps trailing slash at end",
			path:  "/users/:id",
			input: "/users/1/",
			want:  &want{match: "/users/1/", captures: []Capture{{Value: "1", Defined: true}}},
		},
		{
			name:  "prefix match must end on a delimiter",
			path:  "/users",
			input: "/usersx",
		},
		{
			name:  "case insensitive by default",
			path:  "/users/:id",
			input: "/USERS/1",
			want:  &want{match: "/USERS/1", captures: []Capture{{Value: "1", Defined: true}}},
		},
		{
			name:  "case sensitive",
			path:  "/users",
			opts:  Options{Sensitive: true},
			input: "/USERS",
		},
		{
			name:  "no structural match",
			path:  "/users/:id",
			input: "/about",
		},
		{
			name:  "end rejects longer input",
			path:  "/users/:id",
			opts:  Options{End: true},
			input: "/users/1/edit",
		},
		{
			name:  "end relaxed accepts trailing slash",
			path:  "/users/:id",
			opts:  Options{End: true},
			input: "/users/1/",
			want:  &want{match: "/users/1/", captures: []Capture{{Value: "1", Defined: true}}},
		},
		{
			name:  "end strict rejects trailing slash",
			path:  "/users/:id",
			opts:  Options{End: true, Strict: true},
			input: "/users/1/",
		},
		{
			name:  "prefix strict does not report the delimiter",
			path:  "/users/:id",
			opts:  Options{Strict: true},
			input: "/users/1/",
			want:  &want{match: "/users/1", captures: []Capture{{Value: "1", Defined: true}}},
		},
		{
			name:  "prefix strict with trailing delimiter",
			path:  "/users/",
			opts:  Options{Strict: true},
			input: "/users/1",
			want:  &want{match: "/users/", captures: []Capture{}},
		},
		{
			name:  "prefix strict requires trailing delimiter",
			path:  "/users/",
			opts:  Options{Strict: true},
			input: "/users",
		},
		{
			name:  "root matches everything as empty prefix",
			path:  "/",
			input: "/about",
			want:  &want{match: "", captures: []Capture{}},
		},
		{
			name:  "root matches root",
			path:  "/",
			input: "/",
			want:  &want{match: "/", captures: []Capture{}},
		},
		{
			name:  "optional segment absent",
			path:  "/users/:id?",
			input: "/users",
			want:  &want{match: "/users", captures: []Capture{{}}},
		},
		{
			name:  "optional segment present",
			path:  "/users/:id?",
			input: "/users/5",
			want:  &want{match: "/users/5", captures: []Capture{{Value: "5", Defined: true}}},
		},
		{
			name:  "one or more segments",
			path:  "/files/:path+",
			opts:  Options{End: true},
			input: "/files/a/b/c",
			want:  &want{match: "/files/a/b/c", captures: []Capture{{Value: "a/b/c", Defined: true}}},
		},
		{
			name:  "one or more segments requires one",
			path:  "/files/:path+",
			opts:  Options{End: true},
			input: "/files",
		},
		{
			name:  "zero or more segments",
			path:  "/files/:path*",
			opts:  Options{End: true},
			input: "/files",
			want:  &want{match: "/files", captures: []Capture{{}}},
		},
		{
			name:  "custom pattern",
			path:  `/users/:id(\d+)`,
			opts:  Options{End: true},
			input: "/users/12",
			want:  &want{match: "/users/12", captures: []Capture{{Value: "12", Defined: true}}},
		},
		{
			name:  "custom pattern rejects",
			path:  `/users/:id(\d+)`,
			opts:  Options{End: true},
			input: "/users/ab",
		},
		{
			name:  "asterisk",
			path:  "/files/*",
			opts:  Options{End: true},
			input: "/files/a/b",
			want:  &want{match: "/files/a/b", captures: []Capture{{Value: "a/b", Defined: true}}},
		},
		{
			name:  "partial segments",
			path:  "/:file.:ext",
			opts:  Options{End: true},
			input: "/report.pdf",
			want: &want{match: "/report.pdf", captures: []Capture{
				{Value: "report", Defined: true},
				{Value: "pdf", Defined: true},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			re, err := Compile(tc.path, tc.opts)
			require.NoError(t, err)

			res, ok := re.Exec(tc.input)
			if tc.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tc.want.match, res.Match)
			assert.Equal(t, tc.want.captures, res.Captures)
			assert.Len(t, re.Keys(), len(res.Captures))
		})
	}
}

func TestCompile_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := Compile("/users/:id([)", Options{End: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "/users/:id([)", serr.Pattern)
	assert.NotEmpty(t, serr.Source)
	assert.Contains(t, serr.Error(), "invalid pattern")

	assert.Panics(t, func() {
		MustCompile("/users/:id([)", Options{})
	})
}

func TestCompile_Delimiter(t *testing.T) {
	t.Parallel()

	re, err := Compile("com.example", Options{Delimiter: "."})
	require.NoError(t, err)

	res, ok := re.Exec("com.example.api")
	require.True(t, ok)
	assert.Equal(t, "com.example", res.Match)

	_, ok = re.Exec("com.examples")
	assert.False(t, ok)
}

func TestFuzzCompileNoPanics(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1000, 2000)

	patterns := make(map[string]struct{})
	f.Fuzz(&patterns)

	for path := range patterns {
		var input string
		f.Fuzz(&input)
		require.NotPanicsf(t, func() {
			for _, opts := range []Options{{}, {End: true}, {Strict: true}, {End: true, Strict: true}} {
				re, err := Compile(path, opts)
				if err != nil {
					continue
				}
				if res, ok := re.Exec(input); ok {
					require.Len(t, res.Captures, len(re.Keys()))
				}
			}
		}, "pattern: %q, input: %q", path, input)
	}
}

func TestFuzzSegmentValues(t *testing.T) {
	// no delimiter and no character that is meaningful in a pattern
	unicodeRanges := fuzz.UnicodeRanges{
		{First: 0x30, Last: 0x39},
		{First: 0x41, Last: 0x5A},
		{First: 0x61, Last: 0x7A},
		{First: 0x00C0, Last: 0x04FF},
	}

	f := fuzz.New().NilChance(0).Funcs(unicodeRanges.CustomStringFuzzFunc())
	re := MustCompile("/static/:first/:second", Options{End: true, Strict: true})
	for i := 0; i < 2000; i++ {
		var first, second string
		f.Fuzz(&first)
		f.Fuzz(&second)
		if first == "" || second == "" {
			continue
		}

		res, ok := re.Exec("/static/" + first + "/" + second)
		require.True(t, ok)
		assert.Equal(t, []Capture{{Value: first, Defined: true}, {Value: second, Defined: true}}, res.Captures)
	}
}
