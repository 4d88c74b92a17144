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

// Package unsafeextract classifies aborting extractions of Outcome payloads using
// flow-sensitive knowledge of the variant.
package unsafeextract

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
	"fillmore-labs.com/outcomeguard/internal/narrowing"
	"fillmore-labs.com/outcomeguard/internal/reachability/tracker"
)

// Aborting extraction methods and functions of the library.
const (
	unwrapMethod = "Unwrap"
	expectMethod = "Expect"
	mustFunc     = "Must"
)

// Rule reports extractions that always panic, are redundant, or abort inside
// functions whose contract is typed failure.
type Rule struct{}

var _ engine.Rule = Rule{}

// New creates the unsafe extraction rule.
func New() Rule {
	return Rule{}
}

// ID implements [engine.Rule].
func (Rule) ID() diag.RuleID {
	return diag.RuleUnsafeExtraction
}

// DefaultSeverity implements [engine.Rule].
func (Rule) DefaultSeverity() diag.Severity {
	return diag.SeverityWarning
}

// Run implements [engine.Rule].
func (r Rule) Run(_ context.Context, fc *engine.FileContext) []diag.Finding {
	var findings []diag.Finding

	for c := range fc.Cursor.Preorder((*ast.CallExpr)(nil), (*ast.ExprStmt)(nil)) {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			if recv, name, ok := extraction(fc, n); ok {
				findings = append(findings, r.classify(fc, c, n, recv, name)...)
			}

		case *ast.ExprStmt:
			if f, ok := r.abort(fc, c, n); ok {
				findings = append(findings, f)
			}
		}
	}

	return findings
}

// classify produces the findings for one extraction call.
func (Rule) classify(fc *engine.FileContext, c inspector.Cursor, call *ast.CallExpr, recv ast.Expr, name string) []diag.Finding {
	var (
		fact  narrowing.Fact
		cause token.Pos
	)

	if ctor, ok := ast.Unparen(recv).(*ast.CallExpr); ok {
		// The variant of a constructor call is syntactically evident.
		if fact = narrowing.Constructed(fc.TypesInfo, fc.Library(), ctor); fact != narrowing.Unknown {
			cause = ctor.Pos()
		}
	}

	if fact == narrowing.Unknown && fc.Oracle != nil {
		fact, cause = fc.Oracle.FactAt(recv, call.Pos())
	}

	subject := types.ExprString(recv)

	switch fact {
	case narrowing.DefinitelyFailure:
		return []diag.Finding{{
			Code:     diag.ExtractAlwaysPanics,
			Severity: diag.SeverityError,
			Fixed:    true,
			Pos:      call.Pos(),
			End:      call.End(),
			Message:  fmt.Sprintf("%s always panics: %s is a failure here", name, subject),
			Related:  related(cause, "known to be a failure here"),
		}}

	case narrowing.DefinitelySuccess:
		return []diag.Finding{{
			Code:     diag.ExtractRedundant,
			Severity: diag.SeveritySuggestion,
			Pos:      call.Pos(),
			End:      call.End(),
			Message:  fmt.Sprintf("%s is redundant: %s is a success here, use its payload", name, subject),
			Related:  related(cause, "known to be a success here"),
		}}
	}

	var findings []diag.Finding

	if fc.Config.Behavior.Enabled(config.UnsafeCallSites) {
		findings = append(findings, diag.Finding{
			Code:    diag.ExtractUnsafeCallSite,
			Pos:     call.Pos(),
			End:     call.End(),
			Message: fmt.Sprintf("%s panics if %s is a failure, check the variant first", name, subject),
		})
	}

	if inOutcomeFunc(fc, c) {
		findings = append(findings, diag.Finding{
			Code:    diag.ExtractInOutcomeFunc,
			Pos:     call.Pos(),
			End:     call.End(),
			Message: fmt.Sprintf("Don't use %s inside a function returning an Outcome, propagate the failure instead", name),
		})
	}

	return findings
}

// abort reports an aborting statement inside a function returning an Outcome.
func (Rule) abort(fc *engine.FileContext, c inspector.Cursor, stmt *ast.ExprStmt) (diag.Finding, bool) {
	call, ok := ast.Unparen(stmt.X).(*ast.CallExpr)
	if !ok || !tracker.CantReturn(fc.TypesInfo, call) || !inOutcomeFunc(fc, c) {
		return diag.Finding{}, false
	}

	return diag.Finding{
		Code:    diag.AbortInOutcomeFunc,
		Pos:     call.Pos(),
		End:     call.End(),
		Message: fmt.Sprintf("%s aborts inside a function returning an Outcome, return a failure instead", types.ExprString(call.Fun)),
	}, true
}

// extraction recognizes o.Unwrap(), o.Expect(msg) and Must(o) and returns the receiver.
func extraction(fc *engine.FileContext, call *ast.CallExpr) (recv ast.Expr, name string, ok bool) {
	lib := fc.Library()

	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok {
		if selection, ok := fc.TypesInfo.Selections[sel]; ok && selection.Kind() == types.MethodVal {
			fn, _ := selection.Obj().(*types.Func)
			if (lib.IsLibraryMethod(fn, unwrapMethod) || lib.IsLibraryMethod(fn, expectMethod)) && fc.Resolve(sel.X).IsOutcome {
				return sel.X, fn.Name(), true
			}

			return nil, "", false
		}
	}

	if callee := typeutil.Callee(fc.TypesInfo, call); callee != nil && lib.IsLibraryFunc(callee, mustFunc) && len(call.Args) == 1 {
		return call.Args[0], mustFunc, true
	}

	return nil, "", false
}

// inOutcomeFunc reports whether the innermost function enclosing c returns an Outcome or Async.
func inOutcomeFunc(fc *engine.FileContext, c inspector.Cursor) bool {
	info := fc.TypesInfo

	for fn := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var sig *types.Signature

		switch n := fn.Node().(type) {
		case *ast.FuncDecl:
			if obj, ok := info.Defs[n.Name].(*types.Func); ok {
				sig = obj.Signature()
			}

		case *ast.FuncLit:
			sig, _ = info.TypeOf(n).(*types.Signature)
		}

		if sig == nil {
			return false
		}

		for v := range sig.Results().Variables() {
			if fc.Resolver.Resolve(v.Type()).IsOutcome {
				return true
			}
		}

		return false
	}

	return false
}

func related(pos token.Pos, message string) []diag.Related {
	if !pos.IsValid() {
		return nil
	}

	return []diag.Related{{Pos: pos, Message: message}}
}
