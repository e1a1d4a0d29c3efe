// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	netcontext "context"
	"iter"

	"github.com/aleksandr-shukletcov/stencil-router/internal/iterutil"
)

// matchKey is the key that holds the Match in a context.Context.
type matchKey struct{}

type Param struct {
	Key   string
	Value string
}

// Params holds the parameters of a match in declaration order. Keys are unique.
type Params []Param

// Get the matching parameter value by name.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Has checks whether the parameter exists by name.
func (p Params) Has(name string) bool {
	for i := range p {
		if p[i].Key == name {
			return true
		}
	}

	return false
}

// Clone make a copy of Params.
func (p Params) Clone() Params {
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}

// Map returns the parameters as a map of name to value.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for i := range p {
		m[p[i].Key] = p[i].Value
	}
	return m
}

// All returns an iterator over the name and value of every parameter, in declaration order.
func (p Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range p {
			if !yield(p[i].Key, p[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the parameter names, in declaration order.
func (p Params) Keys() iter.Seq[string] {
	return iterutil.Left(p.All())
}

// Values returns an iterator over the parameter values, in declaration order.
func (p Params) Values() iter.Seq[string] {
	return iterutil.Right(p.All())
}

// set assigns value to name, keeping the position of an already declared name.
func (p Params) set(name, value string) Params {
	for i := range p {
		if p[i].Key == name {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: name, Value: value})
}

// ContextWithMatch returns a copy of ctx carrying m, so that nested routes can read the match of their parent.
func ContextWithMatch(ctx netcontext.Context, m *Match) netcontext.Context {
	return netcontext.WithValue(ctx, matchKey{}, m)
}

// MatchFromContext allows extracting the Match stored by [ContextWithMatch].
func MatchFromContext(ctx netcontext.Context) (*Match, bool) {
	m, ok := ctx.Value(matchKey{}).(*Match)
	return m, ok && m != nil
}

// ParamsFromContext allows extracting the params of the Match stored by [ContextWithMatch].
func ParamsFromContext(ctx netcontext.Context) Params {
	if m, ok := MatchFromContext(ctx); ok {
		return m.Params
	}
	return nil
}
