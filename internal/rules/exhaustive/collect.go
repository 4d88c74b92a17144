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
	"go/ast"
	"go/constant"
	"go/types"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/identity"
	"fillmore-labs.com/outcomeguard/internal/logging"
)

// Collect exports a [VariantsFact] for every sealed interface of the current package whose
// members all return distinct constant tags under the same discriminant method.
//
// Unions that do not qualify are rejected as a whole and get no fact.
func Collect(p *analysis.Pass, cfg *config.Config, lib identity.Library, logger *zap.Logger) {
	if lib.InLibrary(p.Pkg) {
		return
	}

	scope := p.Pkg.Scope()

	var unions, candidates []*types.TypeName

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		if iface, ok := named.Underlying().(*types.Interface); ok {
			if sealed(iface) {
				unions = append(unions, tn)
			}

			continue
		}

		candidates = append(candidates, tn)
	}

	if len(unions) == 0 {
		return
	}

	slices.SortFunc(candidates, func(a, b *types.TypeName) int { return int(a.Pos() - b.Pos()) })

	methods := methodDecls(p.Files, p.TypesInfo)

	for _, union := range unions {
		iface := union.Type().Underlying().(*types.Interface)

		var members []*types.TypeName

		for _, tn := range candidates {
			if types.Implements(tn.Type(), iface) || types.Implements(types.NewPointer(tn.Type()), iface) {
				members = append(members, tn)
			}
		}

		if len(members) == 0 {
			continue
		}

		if len(members) > cfg.MaxVariants {
			logger.Debug("Union exceeds maximum variant count, skipping",
				zap.String(logging.FieldPackage, p.Pkg.Path()),
				zap.String("union", union.Name()),
				zap.Int("variants", len(members)),
				zap.Int("max-variants", cfg.MaxVariants))

			continue
		}

		if fact, ok := build(members, cfg.Discriminants, methods, p.TypesInfo); ok {
			p.ExportObjectFact(union, fact)
		}
	}
}

// sealed reports whether an interface has an unexported method, so only its package can implement it.
func sealed(iface *types.Interface) bool {
	for m := range iface.Methods() {
		if !m.Exported() {
			return true
		}
	}

	return false
}

// build computes the variant set of a union. The first discriminant any member declares wins.
func build(members []*types.TypeName, discriminants []string, methods map[*types.Func]*ast.FuncDecl, info *types.Info) (*VariantsFact, bool) {
	discriminant := ""

	for _, name := range discriminants {
		if slices.ContainsFunc(members, func(tn *types.TypeName) bool { return lookupMethod(tn, name) != nil }) {
			discriminant = name

			break
		}
	}

	if discriminant == "" {
		return nil, false
	}

	fact := &VariantsFact{Discriminant: discriminant, Variants: make([]Variant, 0, len(members))}
	seen := make(map[string]struct{}, len(members))

	for _, tn := range members {
		value, ok := literalTag(lookupMethod(tn, discriminant), methods, info)
		if !ok {
			return nil, false
		}

		exact := value.ExactString()
		if _, dup := seen[exact]; dup {
			return nil, false
		}
		seen[exact] = struct{}{}

		tag := exact
		if value.Kind() == constant.String {
			tag = constant.StringVal(value)
		}

		fact.Variants = append(fact.Variants, Variant{Name: tn.Name(), Tag: tag, Value: exact})
	}

	return fact, true
}

// lookupMethod finds the method name in the method set of *T.
func lookupMethod(tn *types.TypeName, name string) *types.Func {
	mset := types.NewMethodSet(types.NewPointer(tn.Type()))

	sel := mset.Lookup(tn.Pkg(), name)
	if sel == nil {
		return nil
	}

	fn, _ := sel.Obj().(*types.Func)

	return fn
}

// literalTag returns the constant returned by a niladic method whose body is a single return.
func literalTag(fn *types.Func, methods map[*types.Func]*ast.FuncDecl, info *types.Info) (constant.Value, bool) {
	if fn == nil {
		return nil, false
	}

	sig := fn.Signature()
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return nil, false
	}

	decl, ok := methods[fn.Origin()]
	if !ok || decl.Body == nil || len(decl.Body.List) != 1 {
		return nil, false
	}

	ret, ok := decl.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, false
	}

	tv, ok := info.Types[ret.Results[0]]
	if !ok || tv.Value == nil {
		return nil, false
	}

	return tv.Value, true
}

// methodDecls indexes the method declarations of the package.
func methodDecls(files []*ast.File, info *types.Info) map[*types.Func]*ast.FuncDecl {
	methods := make(map[*types.Func]*ast.FuncDecl)

	for _, f := range files {
		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv == nil {
				continue
			}

			if fn, ok := info.Defs[fd.Name].(*types.Func); ok {
				methods[fn] = fd
			}
		}
	}

	return methods
}
