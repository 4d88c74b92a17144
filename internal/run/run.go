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

package run

import (
	"context"
	"go/ast"
	"runtime/trace"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcomeguard/internal/astutil"
	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
	"fillmore-labs.com/outcomeguard/internal/identity"
	"fillmore-labs.com/outcomeguard/internal/logging"
	"fillmore-labs.com/outcomeguard/internal/narrowing"
	"fillmore-labs.com/outcomeguard/internal/rules"
	"fillmore-labs.com/outcomeguard/internal/rules/exhaustive"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the outcomeguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errors.Wrapf(ErrResultMissing, "outcomeguard: %s", inspect.Analyzer.Name)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "OutcomeGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	r.once.Do(r.prepare)

	cfg := r.Config
	logger := r.Logger.With(zap.String(logging.FieldPackage, p.Pkg.Path()))

	lib := identity.NewLibrary(cfg.LibraryPaths...)
	resolver := identity.NewResolver(lib, r.Caches.For(p.Fset))

	// Stage 1: export variant sets of the tagged unions declared in this package
	if cfg.Rules.Enabled(config.ExhaustiveRule) {
		exhaustive.Collect(p, cfg, lib, logger)
	}

	e := engine.New(cfg, logger, rules.All()...)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !cfg.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		fc := &engine.FileContext{
			Fset:      p.Fset,
			File:      file,
			Cursor:    f,
			Pkg:       p.Pkg,
			TypesInfo: p.TypesInfo,
			Resolver:  resolver,
			Oracle:    narrowing.New(ctx, p.TypesInfo, resolver, f),
			Config:    cfg,

			ImportObjectFact: p.ImportObjectFact,
		}

		// Stage 2: run the rules
		findings, err := e.RunAll(ctx, fc)
		if err != nil {
			astutil.InternalError(p, file, "%v", err)

			continue
		}

		// Stage 3: report
		funcs := suppressedFuncs(f)

		for _, finding := range findings {
			if slices.ContainsFunc(funcs, func(n ast.Node) bool { return n.Pos() <= finding.Pos && finding.Pos < n.End() }) {
				continue
			}

			report(p, currentFile, finding)
		}
	}

	return nil, nil
}

// suppressedFuncs returns the function declarations documented with a nolint comment.
func suppressedFuncs(f inspector.Cursor) []ast.Node {
	var funcs []ast.Node

	for c := range f.Preorder((*ast.FuncDecl)(nil)) {
		fun := c.Node().(*ast.FuncDecl)

		// Skip functions with nolint comment
		if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
			funcs = append(funcs, fun)
		}
	}

	return funcs
}

// report converts a finding into an [analysis.Diagnostic], honoring line-level nolint comments.
func report(p *analysis.Pass, currentFile astutil.CurrentFile, f diag.Finding) {
	if currentFile.NoLintComment(f.Pos) {
		return
	}

	related := make([]analysis.RelatedInformation, 0, len(f.Related))
	for _, r := range f.Related {
		related = append(related, analysis.RelatedInformation{Pos: r.Pos, End: r.End, Message: r.Message})
	}

	p.Report(analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Category(),
		Message:  f.Text(),
		Related:  related,
	})
}
