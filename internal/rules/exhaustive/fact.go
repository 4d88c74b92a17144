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

package exhaustive

import (
	"go/types"
	"strings"
)

// VariantsFact describes a sealed interface forming a tagged union.
// It is exported on the interface's type name and visible to importing packages.
type VariantsFact struct {
	// Discriminant is the method name returning the literal tag of each member.
	Discriminant string

	// Variants are the members in declaration order.
	Variants []Variant
}

// Variant is one member of a tagged union.
type Variant struct {
	// Name is the member's type name, declared in the union's package.
	Name string

	// Tag is the printable tag, e.g. timeout.
	Tag string

	// Value is the exact constant representation of the tag, e.g. "timeout" including quotes.
	Value string
}

// AFact implements [analysis.Fact].
func (*VariantsFact) AFact() {}

func (f *VariantsFact) String() string {
	tags := make([]string, 0, len(f.Variants))
	for _, v := range f.Variants {
		tags = append(tags, v.Tag)
	}

	return "variants(" + f.Discriminant + ": " + strings.Join(tags, ", ") + ")"
}

// byValue returns the index of the variant with the given constant value.
func (f *VariantsFact) byValue(value string) (int, bool) {
	for i, v := range f.Variants {
		if v.Value == value {
			return i, true
		}
	}

	return -1, false
}

// byType returns the index of the member type t of a union declared in pkg.
func (f *VariantsFact) byType(pkg *types.Package, t types.Type) (int, bool) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return -1, false
	}

	obj := named.Origin().Obj()
	if obj.Pkg() != pkg {
		return -1, false
	}

	for i, v := range f.Variants {
		if v.Name == obj.Name() {
			return i, true
		}
	}

	return -1, false
}

// unionOf returns the type name of the sealed interface t, if any.
func unionOf(t types.Type) *types.TypeName {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	if _, ok := named.Underlying().(*types.Interface); !ok {
		return nil
	}

	return named.Origin().Obj()
}
