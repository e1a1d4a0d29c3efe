// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

// Package router matches URL pathnames against route patterns such as "/users/:id", reporting the matched
// portion of the pathname, whether the whole pathname was matched and the named parameters.
//
// Compiled patterns are cached. The package level [MatchPath] shares a single process-wide cache; use [New]
// to create a [Matcher] with its own cache for an independent routing context.
package router

import (
	"fmt"
)

const rootPath = "/"

// Options describes how a pathname is matched.
type Options struct {
	// Path is the route pattern. The empty string is the root pattern "/", and a match then reports
	// both Path and URL as "/", never "".
	Path string
	// Exact requires the pattern to match the whole pathname.
	Exact bool
	// Strict makes a trailing slash significant.
	Strict bool
}

// Match is the outcome of a successful match.
type Match struct {
	// Path is the route pattern used to match.
	Path string
	// URL is the portion of the pathname matched by the pattern.
	URL string
	// IsExact reports whether URL is the whole pathname.
	IsExact bool
	// Params holds the captured value of every parameter declared by the pattern.
	Params Params
}

// Matcher matches pathnames against route patterns, caching compiled patterns. A Matcher is safe
// for concurrent use.
type Matcher struct {
	cache *patternCache
}

// New returns a ready to use [Matcher] with its own pattern cache.
func New(opts ...Option) (*Matcher, error) {
	cfg := &config{
		compiler: DefaultCompiler,
		limit:    DefaultCacheLimit,
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.logger == nil {
		cfg.logger = defaultLogger()
	}

	var metrics *cacheMetrics
	if cfg.reg != nil {
		var err error
		if metrics, err = newCacheMetrics(cfg.reg, cfg.namespace); err != nil {
			return nil, err
		}
	}

	return &Matcher{cache: newPatternCache(cfg.compiler, cfg.limit, cfg.logger, metrics)}, nil
}

// MustNew is a convenience wrapper for the [New] function and panics on error.
func MustNew(opts ...Option) *Matcher {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMatcher = MustNew()

// MatchPath matches pathname with the process-wide default [Matcher]. The route is given either as
// [Options] or, as a shorthand for Options{Path: path}, as a pattern string.
// See [Matcher.Match] for the returned values.
func MatchPath[O string | Options](pathname string, route O) (*Match, error) {
	return defaultMatcher.Match(pathname, toOptions(route))
}

func toOptions[O string | Options](route O) Options {
	switch r := any(route).(type) {
	case string:
		return Options{Path: r}
	case Options:
		return r
	default:
		panic(fmt.Sprintf("router: unexpected route type %T", route))
	}
}

// Match matches pathname against the route described by opts. It returns a nil [Match] and a nil error
// when the pattern does not match, or when opts.Exact is set and the pattern matches only a prefix of the
// pathname. An error is only returned when the pattern cannot be compiled, as reported by the [Compiler].
func (m *Matcher) Match(pathname string, opts Options) (*Match, error) {
	path := opts.Path
	if path == "" {
		path = rootPath
	}

	compiled, err := m.cache.get(path, Flags{End: opts.Exact, Strict: opts.Strict})
	if err != nil {
		return nil, err
	}

	res, ok := compiled.Exec(pathname)
	if !ok {
		return nil, nil
	}

	// Exactness is checked against the pathname, independently of the End flag.
	url := res.Match
	isExact := pathname == url
	if opts.Exact && !isExact {
		return nil, nil
	}

	if path == rootPath && url == "" {
		url = rootPath
	}

	keys := compiled.Keys()
	params := make(Params, 0, len(keys))
	for i, key := range keys {
		var value string
		if i < len(res.Captures) {
			value = res.Captures[i].Value
		}
		params = params.set(key.Name, value)
	}

	return &Match{
		Path:    path,
		URL:     url,
		IsExact: isExact,
		Params:  params,
	}, nil
}

// MatchString is a shorthand for m.Match(pathname, Options{Path: path}).
func (m *Matcher) MatchString(pathname, path string) (*Match, error) {
	return m.Match(pathname, Options{Path: path})
}

// Stats returns a snapshot of the pattern cache activity.
func (m *Matcher) Stats() CacheStats {
	return m.cache.stats()
}

// DefaultStats returns a snapshot of the pattern cache activity of the process-wide default [Matcher].
func DefaultStats() CacheStats {
	return defaultMatcher.Stats()
}
