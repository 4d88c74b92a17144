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
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"strings"

	"fillmore-labs.com/outcomeguard/internal/diag"
)

// exprSwitch checks switch x.Kind() { ... } over a failure channel value x.
func (c *checker) exprSwitch(s *ast.SwitchStmt) {
	call, ok := ast.Unparen(s.Tag).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	construct, ok := c.failureChannel(sel.X)
	if !ok {
		return
	}

	_, fact, ok := c.variants(c.TypeOf(sel.X))
	if !ok || sel.Sel.Name != fact.Discriminant {
		return
	}

	covered := make([]bool, len(fact.Variants))

	var def *ast.CaseClause

	for _, stmt := range s.Body.List {
		clause := stmt.(*ast.CaseClause)
		if clause.List == nil {
			def = clause

			continue
		}

		for _, e := range clause.List {
			tv, ok := c.TypesInfo.Types[e]
			if !ok || tv.Value == nil {
				return // non-constant case
			}

			if i, ok := fact.byValue(tv.Value.ExactString()); ok {
				covered[i] = true
			}
		}
	}

	c.coverage(s, construct, fact, covered, def != nil)
	c.duplicates(s.Body)
}

// typeSwitch checks switch x.(type) { ... } over a failure channel value x.
func (c *checker) typeSwitch(s *ast.TypeSwitchStmt) {
	var assert *ast.TypeAssertExpr

	switch a := s.Assign.(type) {
	case *ast.ExprStmt:
		assert, _ = a.X.(*ast.TypeAssertExpr)

	case *ast.AssignStmt:
		if len(a.Rhs) == 1 {
			assert, _ = a.Rhs[0].(*ast.TypeAssertExpr)
		}
	}

	if assert == nil {
		return
	}

	construct, ok := c.failureChannel(assert.X)
	if !ok {
		return
	}

	union, fact, ok := c.variants(c.TypeOf(assert.X))
	if !ok {
		return
	}

	covered := make([]bool, len(fact.Variants))

	var hasDefault bool

	for _, stmt := range s.Body.List {
		clause := stmt.(*ast.CaseClause)
		if clause.List == nil {
			hasDefault = true

			continue
		}

		for _, e := range clause.List {
			t := c.TypeOf(e)
			if t == nil || types.Unalias(t) == types.Typ[types.UntypedNil] {
				continue
			}

			i, ok := fact.byType(union.Pkg(), t)
			if !ok {
				return // not a member
			}

			covered[i] = true
		}
	}

	c.coverage(s, construct, fact, covered, hasDefault)
	c.duplicates(s.Body)
}

// coverage reports missing variants or a default branch that hides a single one.
func (c *checker) coverage(s ast.Stmt, construct ast.Node, fact *VariantsFact, covered []bool, hasDefault bool) {
	var missing []string

	for i, v := range fact.Variants {
		if !covered[i] {
			missing = append(missing, v.Tag)
		}
	}

	if construct == nil {
		construct = s
	}

	switch {
	case len(missing) == 0:

	case !hasDefault:
		c.findings = append(c.findings, diag.Finding{
			Code:    diag.ExhaustiveMissing,
			Pos:     s.Pos(),
			End:     switchEnd(s),
			Message: "Missing failure variants " + diag.Quote(missing),
			Related: []diag.Related{{Pos: construct.Pos(), End: construct.End(), Message: "failure handled here"}},
			Payload: &diag.Payload{Variants: missing},
		})

	case len(missing) == 1:
		c.findings = append(c.findings, diag.Finding{
			Code:     diag.ExhaustiveDefaultSingle,
			Severity: diag.SeveritySuggestion,
			Pos:      s.Pos(),
			End:      switchEnd(s),
			Message:  "Default branch catches only variant \"" + missing[0] + "\", use an explicit case",
			Payload:  &diag.Payload{Variants: missing},
		})
	}
}

// duplicates reports case bodies identical to an earlier one.
func (c *checker) duplicates(body *ast.BlockStmt) {
	seen := make(map[string]*ast.CaseClause)

	for _, stmt := range body.List {
		clause := stmt.(*ast.CaseClause)
		if len(clause.Body) == 0 {
			continue
		}

		var buf bytes.Buffer
		if err := format.Node(&buf, c.Fset, clause.Body); err != nil {
			continue
		}

		key := strings.Join(strings.Fields(buf.String()), " ")

		first, ok := seen[key]
		if !ok {
			seen[key] = clause

			continue
		}

		c.findings = append(c.findings, diag.Finding{
			Code:     diag.ExhaustiveDuplicateArms,
			Severity: diag.SeveritySuggestion,
			Pos:      clause.Pos(),
			End:      clause.Colon + 1,
			Message:  "Branch is identical to an earlier one, consider merging the cases",
			Related:  []diag.Related{{Pos: first.Pos(), End: first.Colon + 1, Message: "identical branch"}},
		})
	}
}

func switchEnd(s ast.Stmt) token.Pos {
	switch s := s.(type) {
	case *ast.SwitchStmt:
		return s.Body.Lbrace

	case *ast.TypeSwitchStmt:
		return s.Body.Lbrace

	default:
		return s.End()
	}
}
