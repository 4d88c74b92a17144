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
	"slices"
	"strings"
)

// Recognized declaration names of the Outcome library.
const (
	OutcomeName = "Outcome"
	SuccessName = "Success"
	FailureName = "Failure"
	AsyncName   = "Async"

	okTagName  = "okTag"
	errTagName = "errTag"
	brandName  = "brand"

	payloadField = "Payload"
	errField     = "Err"
)

// Library describes where the Outcome library is declared.
type Library struct {
	// Paths are the import paths of the library. Sub-packages are included.
	Paths []string
}

// NewLibrary creates a [Library] from a list of import paths.
func NewLibrary(paths ...string) Library {
	return Library{Paths: slices.Clone(paths)}
}

// ImportsLibrary reports whether an import path refers to the library.
func (l Library) ImportsLibrary(path string) bool {
	for _, p := range l.Paths {
		if path == p || strings.HasPrefix(path, p) && len(path) > len(p) && path[len(p)] == '/' {
			return true
		}
	}

	return false
}

// InLibrary reports whether pkg is part of the library.
func (l Library) InLibrary(pkg *types.Package) bool {
	return pkg != nil && l.ImportsLibrary(pkg.Path())
}

// IsLibraryFunc reports whether obj is the package-level library function name.
func (l Library) IsLibraryFunc(obj types.Object, name string) bool {
	fn, ok := obj.(*types.Func)
	if !ok || fn.Name() != name || !l.InLibrary(fn.Pkg()) {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Recv() == nil
}

// IsLibraryMethod reports whether fn is a library method called name.
func (l Library) IsLibraryMethod(fn *types.Func, name string) bool {
	if fn == nil || fn.Name() != name || !l.InLibrary(fn.Pkg()) {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Recv() != nil
}

// isLibraryNamed reports whether t is the library's defined type called name.
func (l Library) isLibraryNamed(t types.Type, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Origin().Obj()

	return obj.Name() == name && l.InLibrary(obj.Pkg())
}
