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

package identity

import (
	"go/types"

	"fillmore-labs.com/outcomeguard/internal/typecache"
)

// Resolver decides whether types are Outcome types.
type Resolver struct {
	lib   Library
	cache *typecache.Cache[Info]
}

// NewResolver creates a new [Resolver]. A nil cache disables memoization.
func NewResolver(lib Library, cache *typecache.Cache[Info]) *Resolver {
	return &Resolver{lib: lib, cache: cache}
}

// Library returns the library description of this resolver.
func (r *Resolver) Library() Library {
	return r.lib
}

// Resolve returns the identity of t. Unknown or ambiguous types yield the zero [Info].
func (r *Resolver) Resolve(t types.Type) Info {
	if t == nil {
		return Info{}
	}

	if r.cache == nil {
		return r.resolve(t)
	}

	return r.cache.GetOrCompute(t, r.resolve)
}

func (r *Resolver) resolve(t types.Type) Info {
	if info, ok := r.bySymbol(t); ok {
		return info
	}

	return r.byStructure(t)
}

// bySymbol follows t to its declaring type name.
func (r *Resolver) bySymbol(t types.Type) (Info, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return Info{}, false
	}

	obj := named.Origin().Obj()
	if !r.lib.InLibrary(obj.Pkg()) {
		return Info{}, false
	}

	var success, failure types.Type
	if args := named.TypeArgs(); args.Len() == 2 {
		success, failure = args.At(0), args.At(1)
	}

	info := Info{IsOutcome: true, Success: success, Failure: failure}

	switch obj.Name() {
	case OutcomeName:

	case SuccessName:
		info.IsSuccess = true

	case FailureName:
		info.IsFailure = true

	case AsyncName:
		info.IsAsync = true

	default:
		return Info{}, false
	}

	return info, true
}

// byStructure checks every member of a candidate union for the library's tag and brand.
func (r *Resolver) byStructure(t types.Type) Info {
	members, ok := candidateMembers(t)
	if !ok || len(members) == 0 {
		return Info{}
	}

	var info Info

	var okSeen, errSeen bool

	for _, m := range members {
		isOk, payload, ok := r.member(m)
		if !ok {
			return Info{}
		}

		if isOk {
			okSeen = true
			if info.Success == nil {
				info.Success = payload
			}
		} else {
			errSeen = true
			if info.Failure == nil {
				info.Failure = payload
			}
		}
	}

	info.IsOutcome = true
	info.IsSuccess = okSeen && !errSeen
	info.IsFailure = errSeen && !okSeen

	return info
}

// member checks one union member. It returns whether the member is tagged as success,
// and its payload type.
func (r *Resolver) member(t types.Type) (isOk bool, payload types.Type, ok bool) {
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return false, nil, false
	}

	var tagged, branded bool

	for field := range st.Fields() {
		ft := field.Type()

		switch {
		case r.lib.isLibraryNamed(ft, okTagName):
			if tagged {
				return false, nil, false
			}

			tagged, isOk = true, true

		case r.lib.isLibraryNamed(ft, errTagName):
			if tagged {
				return false, nil, false
			}

			tagged = true

		case r.lib.isLibraryNamed(ft, brandName):
			branded = true
		}
	}

	if !tagged || !branded {
		return false, nil, false
	}

	name := errField
	if isOk {
		name = payloadField
	}

	for field := range st.Fields() {
		if field.Name() == name {
			payload = field.Type()

			break
		}
	}

	return isOk, payload, true
}

// candidateMembers returns the members of a possible union: the terms of a type set,
// or a single defined struct type.
func candidateMembers(t types.Type) ([]types.Type, bool) {
	t = types.Unalias(t)

	if tp, ok := t.(*types.TypeParam); ok {
		return unionTerms(tp.Constraint())
	}

	switch u := t.Underlying().(type) {
	case *types.Interface:
		if u.IsMethodSet() {
			return nil, false
		}

		return unionTerms(u)

	case *types.Struct:
		if _, ok := t.(*types.Named); !ok {
			return nil, false
		}

		return []types.Type{t}, true

	default:
		return nil, false
	}
}

// unionTerms returns the terms of a constraint consisting of exactly one union or one
// non-interface type.
func unionTerms(constraint types.Type) ([]types.Type, bool) {
	iface, ok := constraint.Underlying().(*types.Interface)
	if !ok || iface.NumMethods() > 0 || iface.NumEmbeddeds() != 1 {
		return nil, false
	}

	switch embedded := iface.EmbeddedType(0).(type) {
	case *types.Union:
		terms := make([]types.Type, 0, embedded.Len())
		for i := range embedded.Len() {
			terms = append(terms, embedded.Term(i).Type())
		}

		return terms, true

	default:
		if types.IsInterface(embedded) {
			return nil, false
		}

		return []types.Type{embedded}, true
	}
}
