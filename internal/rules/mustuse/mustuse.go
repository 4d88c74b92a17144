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

// Package mustuse reports Outcome values that are silently discarded.
package mustuse

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"

	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
)

// Rule reports calls whose Outcome result is dropped by an expression, go or defer statement.
// Assigning to the blank identifier is an explicit discard and not reported.
type Rule struct{}

var _ engine.Rule = Rule{}

// New creates the must-use rule.
func New() Rule {
	return Rule{}
}

// ID implements [engine.Rule].
func (Rule) ID() diag.RuleID {
	return diag.RuleMustUse
}

// DefaultSeverity implements [engine.Rule].
func (Rule) DefaultSeverity() diag.Severity {
	return diag.SeverityWarning
}

// Run implements [engine.Rule].
func (r Rule) Run(_ context.Context, fc *engine.FileContext) []diag.Finding {
	var findings []diag.Finding

	for c := range fc.Cursor.Preorder((*ast.ExprStmt)(nil), (*ast.GoStmt)(nil), (*ast.DeferStmt)(nil)) {
		var (
			call *ast.CallExpr
			verb string
		)

		switch n := c.Node().(type) {
		case *ast.ExprStmt:
			var ok bool
			if call, ok = ast.Unparen(n.X).(*ast.CallExpr); !ok {
				continue
			}

			verb = "discarded"

		case *ast.GoStmt:
			call, verb = n.Call, "discarded by go statement"

		case *ast.DeferStmt:
			call, verb = n.Call, "discarded by defer statement"
		}

		if f, ok := r.check(fc, call, verb); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

func (r Rule) check(fc *engine.FileContext, call *ast.CallExpr, verb string) (diag.Finding, bool) {
	code, ok := r.discarded(fc, fc.TypeOf(call))
	if !ok {
		return diag.Finding{}, false
	}

	callee := types.ExprString(call.Fun)

	var message string
	if code == diag.MustUseAsync {
		message = fmt.Sprintf("Async Outcome returned by %s is %s and never awaited", callee, verb)
	} else {
		message = fmt.Sprintf("Outcome returned by %s is %s, handle it or assign it to _", callee, verb)
	}

	return diag.Finding{
		Code:    code,
		Pos:     call.Pos(),
		End:     call.End(),
		Message: message,
	}, true
}

// discarded returns the code for a dropped value of type t, considering every result of a tuple.
func (r Rule) discarded(fc *engine.FileContext, t types.Type) (diag.Code, bool) {
	if tuple, ok := t.(*types.Tuple); ok {
		for v := range tuple.Variables() {
			if code, ok := r.discarded(fc, v.Type()); ok {
				return code, true
			}
		}

		return 0, false
	}

	info := fc.Resolver.Resolve(t)

	switch {
	case !info.IsOutcome:
		return 0, false

	case info.IsAsync:
		return diag.MustUseAsync, true

	default:
		return diag.MustUseOutcome, true
	}
}
