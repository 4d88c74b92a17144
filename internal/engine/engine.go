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

package engine

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/logging"
)

// Rule is one independently configurable diagnostic check.
type Rule interface {
	// ID returns the rule family identifier.
	ID() diag.RuleID

	// DefaultSeverity returns the severity used without an override.
	DefaultSeverity() diag.Severity

	// Run analyzes one file. Run must not retain fc.
	Run(ctx context.Context, fc *FileContext) []diag.Finding
}

// Engine runs an ordered registry of rules over files.
type Engine struct {
	rules  []Rule
	config *config.Config
	logger *zap.Logger
}

// New creates an [Engine] running rules in the given order.
func New(cfg *config.Config, logger *zap.Logger, rules ...Rule) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Engine{rules: rules, config: cfg, logger: logger}
}

// RunAll runs every enabled rule over one file and returns the concatenated findings.
//
// A rule that panics contributes no findings and is logged. An incomplete file context
// is returned as an error wrapping [ErrInvalidFileContext].
func (e *Engine) RunAll(ctx context.Context, fc *FileContext) ([]diag.Finding, error) {
	if err := fc.validate(); err != nil {
		return nil, err
	}

	if e.config.Rules.None() || !e.relevant(fc) {
		return nil, nil
	}

	defer trace.StartRegion(ctx, "RunAll").End()

	var findings []diag.Finding

	for _, r := range e.rules {
		if !e.config.Rules.Enabled(config.RuleFlag(r.ID())) {
			continue
		}

		found, err := e.run(ctx, r, fc)
		if err != nil {
			e.logger.Error("Rule failed, skipping file",
				zap.Stringer(logging.FieldRule, r.ID()),
				zap.String(logging.FieldFile, fc.Filename()),
				zap.Error(err),
				zap.String(logging.FieldStack, fmt.Sprintf("%+v", err)))

			continue
		}

		for i := range found {
			e.resolveSeverity(r, &found[i])
		}

		findings = append(findings, found...)
	}

	return findings, nil
}

// relevant scans the imports of the file for the Outcome library.
// Library packages themselves are always relevant.
func (e *Engine) relevant(fc *FileContext) bool {
	lib := fc.Library()

	if lib.InLibrary(fc.Pkg) {
		return true
	}

	for _, imp := range fc.File.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		if lib.ImportsLibrary(path) {
			return true
		}
	}

	return false
}

func (e *Engine) run(ctx context.Context, r Rule, fc *FileContext) (findings []diag.Finding, err error) {
	defer trace.StartRegion(ctx, r.ID().String()).End()

	defer func() {
		if p := recover(); p != nil {
			findings, err = nil, errors.Newf("rule %s panicked: %v", r.ID(), p)
		}
	}()

	return r.Run(ctx, fc), nil
}

// resolveSeverity applies the configured override or the rule default.
// Fixed findings and findings carrying an explicit severity are kept.
func (e *Engine) resolveSeverity(r Rule, f *diag.Finding) {
	switch {
	case f.Fixed:
		if f.Severity == diag.SeverityDefault {
			f.Severity = diag.SeverityError
		}

	case f.Severity != diag.SeverityDefault:

	case e.config.Severities[r.ID()] != diag.SeverityDefault:
		f.Severity = e.config.Severities[r.ID()]

	default:
		f.Severity = r.DefaultSeverity()
	}
}
