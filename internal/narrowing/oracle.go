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
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/outcomeguard/internal/identity"
)

// Oracle answers narrowing queries.
type Oracle interface {
	// FactAt returns the fact for expr at the program point at, and the position
	// establishing it, [token.NoPos] when the fact is [Unknown].
	FactAt(expr ast.Expr, at token.Pos) (Fact, token.Pos)
}

// Library method and function names consulted for narrowing.
const (
	okFunc        = "Ok"
	failFunc      = "Fail"
	isOkMethod    = "IsOk"
	isErrMethod   = "IsErr"
	valueMethod   = "Value"
	failureMethod = "Failure"
)

// FlowOracle answers narrowing queries for the functions of one file.
// Control-flow graphs and their dataflow are computed lazily, once per function.
type FlowOracle struct {
	ctx      context.Context
	info     *types.Info
	resolver *identity.Resolver
	root     inspector.Cursor

	flows       map[ast.Node]*flow
	untrackable map[*types.Var]struct{}
}

var _ Oracle = (*FlowOracle)(nil)

// New creates a [FlowOracle] for the file at root.
func New(ctx context.Context, info *types.Info, resolver *identity.Resolver, root inspector.Cursor) *FlowOracle {
	return &FlowOracle{
		ctx:      ctx,
		info:     info,
		resolver: resolver,
		root:     root,
		flows:    make(map[ast.Node]*flow),
	}
}

// FactAt implements [Oracle].
func (o *FlowOracle) FactAt(expr ast.Expr, at token.Pos) (Fact, token.Pos) {
	expr = ast.Unparen(expr)

	if kind := o.staticFact(expr); kind != Unknown {
		return kind, expr.Pos()
	}

	if call, ok := expr.(*ast.CallExpr); ok {
		if kind := o.constructed(call); kind != Unknown {
			return kind, call.Pos()
		}

		return Unknown, token.NoPos
	}

	id, ok := expr.(*ast.Ident)
	if !ok {
		return Unknown, token.NoPos
	}

	v := o.outcomeVar(id)
	if v == nil {
		return Unknown, token.NoPos
	}

	c, ok := o.root.FindByPos(id.Pos(), id.End())
	if !ok {
		return Unknown, token.NoPos
	}

	fl := o.flowOf(c)
	if fl == nil {
		return Unknown, token.NoPos
	}

	st, node := fl.stateAt(at)
	if st == nil {
		return Unknown, token.NoPos
	}

	fl.refineEnclosing(st, c, node)

	f, ok := st.vars[v]
	if !ok {
		return Unknown, token.NoPos
	}

	return f.kind, f.cause
}

// staticFact returns the variant implied by the static type of expr.
func (o *FlowOracle) staticFact(expr ast.Expr) Fact {
	info := o.resolver.Resolve(o.info.TypeOf(expr))

	switch {
	case info.IsSuccess:
		return DefinitelySuccess

	case info.IsFailure:
		return DefinitelyFailure

	default:
		return Unknown
	}
}

// constructed returns the variant of a direct Ok or Fail constructor call.
func (o *FlowOracle) constructed(call *ast.CallExpr) Fact {
	return Constructed(o.info, o.resolver.Library(), call)
}

// Constructed returns the variant of a direct Ok or Fail constructor call,
// [Unknown] for any other expression.
func Constructed(info *types.Info, lib identity.Library, call *ast.CallExpr) Fact {
	callee := typeutil.Callee(info, call)

	switch {
	case callee == nil:
		return Unknown

	case lib.IsLibraryFunc(callee, okFunc):
		return DefinitelySuccess

	case lib.IsLibraryFunc(callee, failFunc):
		return DefinitelyFailure

	default:
		return Unknown
	}
}

// flowOf returns the lazily computed dataflow of the function enclosing c.
func (o *FlowOracle) flowOf(c inspector.Cursor) *flow {
	for fn := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		node := fn.Node()
		if fl, ok := o.flows[node]; ok {
			return fl
		}

		fl := newFlow(o, node)
		o.flows[node] = fl

		return fl
	}

	return nil
}

// localVar returns the local variable denoted by id, if any.
func (o *FlowOracle) localVar(id *ast.Ident) *types.Var {
	obj := o.info.ObjectOf(id)

	v, ok := obj.(*types.Var)
	if !ok || v.IsField() || v.Pkg() == nil || v.Parent() == nil || v.Parent() == v.Pkg().Scope() {
		return nil
	}

	if o.untrackable == nil {
		o.untrackable = collectUntrackable(o.info, o.root)
	}

	if _, ok := o.untrackable[v]; ok {
		return nil
	}

	return v
}

// outcomeVar returns the trackable local variable of Outcome type denoted by id.
func (o *FlowOracle) outcomeVar(id *ast.Ident) *types.Var {
	v := o.localVar(id)
	if v == nil {
		return nil
	}

	if info := o.resolver.Resolve(v.Type()); !info.IsOutcome || info.IsAsync || info.IsVariant() {
		return nil
	}

	return v
}

// boolVar returns the trackable local boolean variable denoted by id.
func (o *FlowOracle) boolVar(id *ast.Ident) *types.Var {
	v := o.localVar(id)
	if v == nil {
		return nil
	}

	if b, ok := v.Type().Underlying().(*types.Basic); !ok || b.Kind() != types.Bool {
		return nil
	}

	return v
}

// libraryCall returns the tracked receiver variable and method name of a
// niladic library method call on a local Outcome variable.
func (o *FlowOracle) libraryCall(expr ast.Expr) (*types.Var, string) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil, ""
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, ""
	}

	fn, ok := o.info.ObjectOf(sel.Sel).(*types.Func)
	if !ok || !o.resolver.Library().IsLibraryMethod(fn, fn.Name()) {
		return nil, ""
	}

	recv, ok := ast.Unparen(sel.X).(*ast.Ident)
	if !ok {
		return nil, ""
	}

	v := o.outcomeVar(recv)
	if v == nil {
		return nil, ""
	}

	return v, fn.Name()
}

// collectUntrackable returns the variables of a file whose address is taken or that are
// assigned inside a function literal they are not declared in.
func collectUntrackable(info *types.Info, root inspector.Cursor) map[*types.Var]struct{} {
	untrackable := make(map[*types.Var]struct{})

	mark := func(expr ast.Expr, lit *ast.FuncLit) {
		id, ok := ast.Unparen(expr).(*ast.Ident)
		if !ok {
			return
		}

		v, ok := info.ObjectOf(id).(*types.Var)
		if !ok {
			return
		}

		if lit != nil && (v.Pos() < lit.Pos() || v.Pos() >= lit.End()) {
			untrackable[v] = struct{}{}
		}
	}

	for c := range root.Preorder((*ast.UnaryExpr)(nil), (*ast.AssignStmt)(nil), (*ast.IncDecStmt)(nil), (*ast.RangeStmt)(nil)) {
		var lit *ast.FuncLit
		for l := range c.Enclosing((*ast.FuncLit)(nil)) {
			lit = l.Node().(*ast.FuncLit)

			break
		}

		switch n := c.Node().(type) {
		case *ast.UnaryExpr:
			if n.Op != token.AND {
				continue
			}

			if id, ok := ast.Unparen(n.X).(*ast.Ident); ok {
				if v, ok := info.ObjectOf(id).(*types.Var); ok {
					untrackable[v] = struct{}{}
				}
			}

		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				mark(lhs, lit)
			}

		case *ast.IncDecStmt:
			mark(n.X, lit)

		case *ast.RangeStmt:
			if n.Key != nil {
				mark(n.Key, lit)
			}

			if n.Value != nil {
				mark(n.Value, lit)
			}
		}
	}

	return untrackable
}
