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

package graph

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/outcomeguard/internal/reachability/block"
)

// Graph is the control-flow graph of one function body.
type Graph struct {
	// Entry is the block executed first.
	Entry *block.Block

	// Blocks are all blocks in creation order, including empty ones. Entry is the first.
	Blocks []*block.Block
}

// BuildGraph constructs the control-flow graph for the given function body.
//
// Blocks ending in an if or for condition, or in a single-expression case of a tagless
// switch, record the condition with Successor1 as "then" and Successor2 as "else" branch.
func BuildGraph(ctx context.Context, info *types.Info, recv *ast.FieldList, typ *ast.FuncType, body *ast.BlockStmt) *Graph {
	if body == nil {
		return nil
	}

	defer trace.StartRegion(ctx, "Graph").End()

	b := builder{
		labels: make(map[string]*LabelTarget),
		info:   info,
	}

	fun := b.New(typ.Pos()) // function literal

	fun.AddFields(recv)
	fun.AddFields(typ.Params)
	fun.AddFields(typ.Results)

	_ = b.appendStmtList(fun, body.List)

	blocks := make([]*block.Block, 0, b.Len())
	for block := range b.Each {
		blocks = append(blocks, block)
	}

	return &Graph{Entry: fun, Blocks: blocks}
}
