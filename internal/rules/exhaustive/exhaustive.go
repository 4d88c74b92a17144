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

// Package exhaustive checks that failure handlers cover every variant of a tagged union.
package exhaustive

import (
	"context"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
)

// Library names of two-branch folds and failure channel accessors.
const (
	matchFunc       = "Match"
	handleMethod    = "Handle"
	unwrapErrMethod = "UnwrapErr"
	failureMethod   = "Failure"
	errField        = "Err"
)

// Rule reports failure handlers missing variants of a tagged union, default branches
// hiding a single variant, identical branches and handlers that only re-panic.
type Rule struct{}

var _ engine.Rule = Rule{}

// New creates the exhaustiveness rule.
func New() Rule {
	return Rule{}
}

// ID implements [engine.Rule].
func (Rule) ID() diag.RuleID {
	return diag.RuleExhaustive
}

// DefaultSeverity implements [engine.Rule].
func (Rule) DefaultSeverity() diag.Severity {
	return diag.SeverityWarning
}

// Run implements [engine.Rule].
func (Rule) Run(_ context.Context, fc *engine.FileContext) []diag.Finding {
	c := checker{
		FileContext: fc,
		arms:        make(map[*types.Var]ast.Node),
		facts:       make(map[*types.TypeName]*VariantsFact),
	}

	// Two-branch folds first, so switches inside their failure arms know their construct.
	for n := range fc.Cursor.Preorder((*ast.CallExpr)(nil)) {
		c.fold(n.Node().(*ast.CallExpr))
	}

	for n := range fc.Cursor.Preorder((*ast.SwitchStmt)(nil), (*ast.TypeSwitchStmt)(nil)) {
		switch s := n.Node().(type) {
		case *ast.SwitchStmt:
			c.exprSwitch(s)

		case *ast.TypeSwitchStmt:
			c.typeSwitch(s)
		}
	}

	return c.findings
}

// checker holds the state of one run over a file.
type checker struct {
	*engine.FileContext

	arms     map[*types.Var]ast.Node // Failure arm parameters and their fold call
	facts    map[*types.TypeName]*VariantsFact
	findings []diag.Finding
}

// fold registers the failure arm of outcome.Match(o, ok, fail) or o.Handle(ok, fail)
// and checks it for a bare re-raise.
func (c *checker) fold(call *ast.CallExpr) {
	lib := c.Library()

	var arm ast.Expr

	if callee := typeutil.Callee(c.TypesInfo, call); callee != nil {
		switch fn, _ := callee.(*types.Func); {
		case lib.IsLibraryFunc(callee, matchFunc) && len(call.Args) == 3:
			arm = call.Args[2]

		case fn != nil && lib.IsLibraryMethod(fn, handleMethod) && len(call.Args) == 2:
			arm = call.Args[1]
		}
	}

	lit, ok := ast.Unparen(arm).(*ast.FuncLit)
	if !ok {
		return
	}

	param := firstParam(c.TypesInfo, lit)
	if param == nil {
		return
	}

	c.arms[param] = call

	c.reraise(lit, param)
}

// reraise reports a failure arm whose body is only panic(e).
func (c *checker) reraise(lit *ast.FuncLit, param *types.Var) {
	if len(lit.Body.List) != 1 {
		return
	}

	stmt, ok := lit.Body.List[0].(*ast.ExprStmt)
	if !ok {
		return
	}

	call, ok := ast.Unparen(stmt.X).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || c.TypesInfo.Uses[calleeIdent(call)] != builtinPanic {
		return
	}

	arg, ok := ast.Unparen(call.Args[0]).(*ast.Ident)
	if !ok || c.TypesInfo.Uses[arg] != param {
		return
	}

	c.findings = append(c.findings, diag.Finding{
		Code:    diag.ExhaustiveReraise,
		Pos:     lit.Pos(),
		End:     lit.End(),
		Message: "Failure handler only re-panics, which defeats typed failure handling",
		Related: []diag.Related{{Pos: call.Pos(), End: call.End(), Message: "re-raised here"}},
	})
}

// variants returns the variant set of the union type t, if any.
func (c *checker) variants(t types.Type) (*types.TypeName, *VariantsFact, bool) {
	union := unionOf(t)
	if union == nil || union.Pkg() == nil || c.ImportObjectFact == nil {
		return nil, nil, false
	}

	if fact, ok := c.facts[union]; ok {
		return union, fact, fact != nil
	}

	fact := new(VariantsFact)
	if !c.ImportObjectFact(union, fact) {
		fact = nil
	}

	c.facts[union] = fact

	return union, fact, fact != nil
}

// failureChannel reports whether expr is a failure channel value and returns the
// handling construct, which is expr itself unless it is a failure arm parameter.
func (c *checker) failureChannel(expr ast.Expr) (ast.Node, bool) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		v, ok := c.TypesInfo.Uses[e].(*types.Var)
		if !ok {
			return nil, false
		}

		if construct, ok := c.arms[v]; ok {
			return construct, true
		}

		if rhs, first, ok := c.definition(v); ok && c.accessor(rhs, first) {
			return nil, true
		}

	default:
		if c.accessor(e, false) {
			return nil, true
		}
	}

	return nil, false
}

// accessor recognizes o.UnwrapErr(), the first result of o.Failure() and f.Err of a failure.
func (c *checker) accessor(expr ast.Expr, first bool) bool {
	lib := c.Library()

	switch e := ast.Unparen(expr).(type) {
	case *ast.CallExpr:
		sel, ok := ast.Unparen(e.Fun).(*ast.SelectorExpr)
		if !ok {
			return false
		}

		fn, ok := c.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok || !c.Resolve(sel.X).IsOutcome {
			return false
		}

		return lib.IsLibraryMethod(fn, unwrapErrMethod) || first && lib.IsLibraryMethod(fn, failureMethod)

	case *ast.SelectorExpr:
		return e.Sel.Name == errField && c.Resolve(e.X).IsFailure

	default:
		return false
	}
}

// definition finds the right-hand side defining a local variable. first reports that
// v is the first of two variables defined from a single call.
func (c *checker) definition(v *types.Var) (rhs ast.Expr, first bool, ok bool) {
	id, ok := c.Cursor.FindByPos(v.Pos(), v.Pos()+1)
	if !ok {
		return nil, false, false
	}

	if _, ok := id.Node().(*ast.Ident); !ok {
		return nil, false, false
	}

	var lhs []ast.Node

	var values []ast.Expr

	switch p := id.Parent().Node().(type) {
	case *ast.AssignStmt:
		for _, l := range p.Lhs {
			lhs = append(lhs, l)
		}

		values = p.Rhs

	case *ast.ValueSpec:
		for _, l := range p.Names {
			lhs = append(lhs, l)
		}

		values = p.Values

	default:
		return nil, false, false
	}

	for i, l := range lhs {
		if l != id.Node() {
			continue
		}

		switch {
		case len(values) == len(lhs):
			return values[i], false, true

		case len(values) == 1 && len(lhs) == 2 && i == 0:
			return values[0], true, true
		}
	}

	return nil, false, false
}

var builtinPanic = types.Universe.Lookup("panic")

func calleeIdent(call *ast.CallExpr) *ast.Ident {
	id, _ := ast.Unparen(call.Fun).(*ast.Ident)

	return id
}

func firstParam(info *types.Info, lit *ast.FuncLit) *types.Var {
	params := lit.Type.Params
	if params == nil || len(params.List) == 0 || len(params.List[0].Names) == 0 {
		return nil
	}

	v, _ := info.Defs[params.List[0].Names[0]].(*types.Var)

	return v
}
