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

package engine_test

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	. "fillmore-labs.com/outcomeguard/internal/engine"
	"fillmore-labs.com/outcomeguard/internal/identity"
	"fillmore-labs.com/outcomeguard/internal/testsource"
)

type fakeRule struct {
	id       diag.RuleID
	severity diag.Severity
	findings []diag.Finding
	panics   bool
	calls    *int
}

func (r fakeRule) ID() diag.RuleID { return r.id }

func (r fakeRule) DefaultSeverity() diag.Severity { return r.severity }

func (r fakeRule) Run(context.Context, *FileContext) []diag.Finding {
	if r.calls != nil {
		*r.calls++
	}

	if r.panics {
		panic("boom")
	}

	return append([]diag.Finding(nil), r.findings...)
}

func outcomeFile(t *testing.T, cfg *config.Config) *FileContext {
	t.Helper()

	fset, f, _, _ := testsource.Parse(t, "_ = outcome.Ok[int, error](1)")
	pkg, info := testsource.Check(t, fset, f)

	return fileContext(fset, f, pkg, info, cfg)
}

func fileContext(fset *token.FileSet, f *ast.File, pkg *types.Package, info *types.Info, cfg *config.Config) *FileContext {
	return &FileContext{
		Fset:      fset,
		File:      f,
		Cursor:    inspector.New([]*ast.File{f}).Root(),
		Pkg:       pkg,
		TypesInfo: info,
		Resolver:  identity.NewResolver(identity.NewLibrary(testsource.LibraryPath), nil),
		Config:    cfg,
	}
}

func TestRunAllSeverities(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Severities[diag.RuleMustUse] = diag.SeverityError
	cfg.Severities[diag.RuleUnsafeExtraction] = diag.SeveritySuggestion

	e := New(cfg, nil,
		fakeRule{id: diag.RuleExhaustive, severity: diag.SeverityWarning, findings: []diag.Finding{
			{Code: diag.ExhaustiveMissing},
			{Code: diag.ExhaustiveDefaultSingle, Severity: diag.SeveritySuggestion},
		}},
		fakeRule{id: diag.RuleUnsafeExtraction, severity: diag.SeverityWarning, findings: []diag.Finding{
			{Code: diag.ExtractAlwaysPanics, Severity: diag.SeverityError, Fixed: true},
			{Code: diag.ExtractUnsafeCallSite},
			{Code: diag.ExtractAlwaysPanics, Fixed: true},
		}},
		fakeRule{id: diag.RuleMustUse, severity: diag.SeverityWarning, findings: []diag.Finding{
			{Code: diag.MustUseOutcome},
		}},
	)

	findings, err := e.RunAll(t.Context(), outcomeFile(t, cfg))
	require.NoError(t, err)
	require.Len(t, findings, 6)

	// Fixed findings ignore the rule override.
	want := []diag.Severity{
		diag.SeverityWarning, diag.SeveritySuggestion,
		diag.SeverityError, diag.SeveritySuggestion, diag.SeverityError,
		diag.SeverityError,
	}
	for i, f := range findings {
		assert.Equal(t, want[i], f.Severity, "finding %s", f.Code.ID())
	}
}

func TestRunAllIsolatesPanics(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)

	cfg := config.Default()
	e := New(cfg, zap.New(core),
		fakeRule{id: diag.RuleExhaustive, panics: true},
		fakeRule{id: diag.RuleMustUse, severity: diag.SeverityWarning, findings: []diag.Finding{{Code: diag.MustUseOutcome}}},
	)

	findings, err := e.RunAll(t.Context(), outcomeFile(t, cfg))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, diag.MustUseOutcome, findings[0].Code)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "exhaustive", logs.All()[0].ContextMap()["rule"])
}

func TestRunAllSkipsDisabledRules(t *testing.T) {
	t.Parallel()

	var calls int

	cfg := config.Default()
	cfg.Rules.Disable(config.MustUseRule)

	e := New(cfg, nil, fakeRule{id: diag.RuleMustUse, calls: &calls})

	_, err := e.RunAll(t.Context(), outcomeFile(t, cfg))
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestRunAllEarlyExit(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "plain.go", "package plain\n\nvar x = 1\n", 0)
	require.NoError(t, err)

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := new(types.Config).Check("plain", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	var calls int

	cfg := config.Default()
	e := New(cfg, nil, fakeRule{id: diag.RuleMustUse, calls: &calls})

	findings, err := e.RunAll(t.Context(), fileContext(fset, f, pkg, info, cfg))
	require.NoError(t, err)
	assert.Empty(t, findings)
	assert.Zero(t, calls)
}

func TestRunAllInvalidContext(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	e := New(cfg, nil)

	fc := outcomeFile(t, cfg)
	fc.TypesInfo = nil

	_, err := e.RunAll(t.Context(), fc)
	require.ErrorIs(t, err, ErrInvalidFileContext)

	_, err = e.RunAll(t.Context(), nil)
	require.ErrorIs(t, err, ErrInvalidFileContext)
}
