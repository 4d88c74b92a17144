// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package narrowing

import (
	"go/token"
	"go/types"
	"maps"
)

// fact is a definite variant of a variable together with the position establishing it.
type fact struct {
	kind  Fact
	cause token.Pos
}

// alias records that a boolean variable holds a variant test of target.
type alias struct {
	target *types.Var
	onTrue Fact // The variant of target when the alias is true
	cause  token.Pos
}

// state is the dataflow state at a program point. A nil *state is unreachable.
type state struct {
	vars    map[*types.Var]fact
	aliases map[*types.Var]alias
}

func newState() *state {
	return &state{
		vars:    make(map[*types.Var]fact),
		aliases: make(map[*types.Var]alias),
	}
}

func (s *state) clone() *state {
	if s == nil {
		return nil
	}

	return &state{vars: maps.Clone(s.vars), aliases: maps.Clone(s.aliases)}
}

// kill forgets everything known about v, including aliases of and to v.
func (s *state) kill(v *types.Var) {
	delete(s.vars, v)
	delete(s.aliases, v)

	maps.DeleteFunc(s.aliases, func(_ *types.Var, a alias) bool { return a.target == v })
}

// meet intersects two states. Facts survive when both sides agree on the variant.
func meet(a, b *state) *state {
	switch {
	case a == nil:
		return b.clone()

	case b == nil:
		return a.clone()
	}

	m := newState()

	for v, fa := range a.vars {
		if fb, ok := b.vars[v]; ok && fa.kind == fb.kind {
			m.vars[v] = fa
		}
	}

	for v, aa := range a.aliases {
		if ab, ok := b.aliases[v]; ok && aa.target == ab.target && aa.onTrue == ab.onTrue {
			m.aliases[v] = aa
		}
	}

	return m
}

// equal compares two states, ignoring causes.
func equal(a, b *state) bool {
	if a == nil || b == nil {
		return a == b
	}

	return maps.EqualFunc(a.vars, b.vars, func(x, y fact) bool { return x.kind == y.kind }) &&
		maps.EqualFunc(a.aliases, b.aliases, func(x, y alias) bool { return x.target == y.target && x.onTrue == y.onTrue })
}
