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
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcomeguard/internal/reachability/block"
	"fillmore-labs.com/outcomeguard/internal/reachability/graph"
)

// flow is the solved dataflow of one function.
type flow struct {
	o     *FlowOracle
	in    map[*block.Block]*state
	index []nodeRef // Sorted by position
}

// nodeRef locates a node inside its block.
type nodeRef struct {
	node  ast.Node
	block *block.Block
	i     int
}

func newFlow(o *FlowOracle, fn ast.Node) *flow {
	var g *graph.Graph

	switch fn := fn.(type) {
	case *ast.FuncDecl:
		g = graph.BuildGraph(o.ctx, o.info, fn.Recv, fn.Type, fn.Body)

	case *ast.FuncLit:
		g = graph.BuildGraph(o.ctx, o.info, nil, fn.Type, fn.Body)
	}

	fl := &flow{o: o, in: make(map[*block.Block]*state)}
	if g == nil {
		return fl
	}

	for _, b := range g.Blocks {
		for i, n := range b.Nodes {
			fl.index = append(fl.index, nodeRef{node: n, block: b, i: i})
		}
	}

	slices.SortFunc(fl.index, func(a, b nodeRef) int { return int(a.node.Pos() - b.node.Pos()) })

	fl.solve(g.Entry)

	return fl
}

// solve runs the forward must-analysis to a fixpoint.
func (f *flow) solve(entry *block.Block) {
	f.in[entry] = newState()

	work := []*block.Block{entry}
	queued := map[*block.Block]bool{entry: true}

	for len(work) > 0 {
		b := work[0]
		work = work[1:]
		queued[b] = false

		out := f.in[b].clone()
		for _, n := range b.Nodes {
			f.transfer(out, n)
		}

		propagate := func(succ *block.Block, st *state) {
			if succ == nil {
				return
			}

			old := f.in[succ]

			merged := meet(old, st)
			if old != nil && equal(old, merged) {
				return
			}

			f.in[succ] = merged

			if !queued[succ] {
				queued[succ] = true
				work = append(work, succ)
			}
		}

		if b.Conditional() {
			then, els := out.clone(), out
			f.refine(then, b.Cond, true)
			f.refine(els, b.Cond, false)

			propagate(b.Successor1, then)
			propagate(b.Successor2, els)

			continue
		}

		propagate(b.Successor1, out)
		propagate(b.Successor2, out)
	}
}

// stateAt returns the state before the node containing pos, and that node.
func (f *flow) stateAt(pos token.Pos) (*state, ast.Node) {
	i, found := slices.BinarySearchFunc(f.index, pos, func(r nodeRef, p token.Pos) int {
		switch {
		case r.node.End() <= p:
			return -1

		case r.node.Pos() > p:
			return 1

		default:
			return 0
		}
	})
	if !found {
		return nil, nil
	}

	ref := f.index[i]

	st := f.in[ref.block].clone()
	if st == nil {
		return nil, ref.node
	}

	for _, n := range ref.block.Nodes[:ref.i] {
		f.transfer(st, n)
	}

	return st, ref.node
}

// refineEnclosing applies the short-circuit conditions between c and its enclosing node.
func (f *flow) refineEnclosing(st *state, c inspector.Cursor, node ast.Node) {
	type refinement struct {
		cond  ast.Expr
		truth bool
	}

	var conds []refinement

walk:
	for child := c; child.Node() != node; {
		parent := child.Parent()

		switch p := parent.Node().(type) {
		case *ast.BinaryExpr:
			if (p.Op == token.LAND || p.Op == token.LOR) && child.Node().Pos() >= p.Y.Pos() {
				conds = append(conds, refinement{cond: p.X, truth: p.Op == token.LAND})
			}

		case *ast.FuncLit, *ast.FuncDecl, *ast.File:
			break walk
		}

		child = parent
	}

	for _, r := range slices.Backward(conds) {
		f.refine(st, r.cond, r.truth)
	}
}

// transfer applies the effect of one node to st.
func (f *flow) transfer(st *state, n ast.Node) {
	switch n := n.(type) {
	case *ast.AssignStmt:
		f.assign(st, n.Lhs, n.Rhs, n.Tok == token.DEFINE || n.Tok == token.ASSIGN)

	case *ast.DeclStmt:
		decl, ok := n.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR {
			return
		}

		for _, spec := range decl.Specs {
			spec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			lhs := make([]ast.Expr, len(spec.Names))
			for i, name := range spec.Names {
				lhs[i] = name
			}

			f.assign(st, lhs, spec.Values, true)
		}

	case *ast.IncDecStmt:
		f.assign(st, []ast.Expr{n.X}, nil, false)
	}
}

// assign applies a (parallel) assignment. Plain assignments may establish facts or aliases,
// anything else forgets what is known about the assigned variables.
func (f *flow) assign(st *state, lhs, rhs []ast.Expr, plain bool) {
	type update struct {
		v     *types.Var
		fact  *fact
		alias *alias
	}

	updates := make([]update, 0, len(lhs))

	for i, l := range lhs {
		id, ok := ast.Unparen(l).(*ast.Ident)
		if !ok {
			continue
		}

		v, ok := f.o.info.ObjectOf(id).(*types.Var)
		if !ok {
			continue
		}

		u := update{v: v}

		if plain {
			switch {
			case len(lhs) == len(rhs):
				u.fact, u.alias = f.eval(st, id, rhs[i])

			case len(rhs) == 1 && len(lhs) == 2 && i == 1:
				u.alias = f.evalTuple(id, rhs[0])
			}
		}

		updates = append(updates, u)
	}

	for _, u := range updates {
		st.kill(u.v)
	}

	for _, u := range updates {
		if u.fact != nil {
			st.vars[u.v] = *u.fact
		}

		if u.alias != nil {
			st.aliases[u.v] = *u.alias
		}
	}
}

// eval computes what is known about id after id = rhs.
func (f *flow) eval(st *state, id *ast.Ident, rhs ast.Expr) (*fact, *alias) {
	if v := f.o.outcomeVar(id); v != nil {
		rhs = ast.Unparen(rhs)

		if kind := f.o.staticFact(rhs); kind != Unknown {
			return &fact{kind: kind, cause: rhs.Pos()}, nil
		}

		switch r := rhs.(type) {
		case *ast.CallExpr:
			if kind := f.o.constructed(r); kind != Unknown {
				return &fact{kind: kind, cause: r.Pos()}, nil
			}

		case *ast.Ident:
			if src := f.o.outcomeVar(r); src != nil {
				if fa, ok := st.vars[src]; ok {
					return &fa, nil
				}
			}
		}

		return nil, nil
	}

	if v := f.o.boolVar(id); v != nil {
		target, method := f.o.libraryCall(rhs)

		switch {
		case target == nil:

		case method == isOkMethod:
			return nil, &alias{target: target, onTrue: DefinitelySuccess, cause: rhs.Pos()}

		case method == isErrMethod:
			return nil, &alias{target: target, onTrue: DefinitelyFailure, cause: rhs.Pos()}
		}
	}

	return nil, nil
}

// evalTuple computes the alias for ok in _, ok = x.Value() or _, ok = x.Failure().
func (f *flow) evalTuple(id *ast.Ident, rhs ast.Expr) *alias {
	if f.o.boolVar(id) == nil {
		return nil
	}

	target, method := f.o.libraryCall(rhs)

	switch {
	case target == nil:
		return nil

	case method == valueMethod:
		return &alias{target: target, onTrue: DefinitelySuccess, cause: rhs.Pos()}

	case method == failureMethod:
		return &alias{target: target, onTrue: DefinitelyFailure, cause: rhs.Pos()}

	default:
		return nil
	}
}

// refine records the facts implied by cond evaluating to truth.
func (f *flow) refine(st *state, cond ast.Expr, truth bool) {
	switch c := ast.Unparen(cond).(type) {
	case *ast.UnaryExpr:
		if c.Op == token.NOT {
			f.refine(st, c.X, !truth)
		}

	case *ast.BinaryExpr:
		switch c.Op {
		case token.LAND:
			if truth {
				f.refine(st, c.X, true)
				f.refine(st, c.Y, true)
			}

		case token.LOR:
			if !truth {
				f.refine(st, c.X, false)
				f.refine(st, c.Y, false)
			}

		case token.EQL, token.NEQ:
			eql := c.Op == token.EQL

			if b, ok := f.boolConst(c.Y); ok {
				f.refine(st, c.X, (b == truth) == eql)
			} else if b, ok := f.boolConst(c.X); ok {
				f.refine(st, c.Y, (b == truth) == eql)
			}
		}

	case *ast.CallExpr:
		target, method := f.o.libraryCall(c)

		var onTrue Fact

		switch {
		case target == nil:
			return

		case method == isOkMethod:
			onTrue = DefinitelySuccess

		case method == isErrMethod:
			onTrue = DefinitelyFailure

		default:
			return
		}

		kind := onTrue
		if !truth {
			kind = onTrue.Opposite()
		}

		st.vars[target] = fact{kind: kind, cause: c.Pos()}

	case *ast.Ident:
		v := f.o.boolVar(c)
		if v == nil {
			return
		}

		a, ok := st.aliases[v]
		if !ok {
			return
		}

		kind := a.onTrue
		if !truth {
			kind = a.onTrue.Opposite()
		}

		st.vars[a.target] = fact{kind: kind, cause: a.cause}
	}
}

func (f *flow) boolConst(expr ast.Expr) (bool, bool) {
	tv, ok := f.o.info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Bool {
		return false, false
	}

	return constant.BoolVal(tv.Value), true
}
