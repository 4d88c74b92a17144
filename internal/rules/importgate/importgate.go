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

// Package importgate restricts imports of the Outcome library to configured file paths.
package importgate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
)

// Rule reports imports of the Outcome library from files matching none of the allow patterns.
// Without patterns, every import is allowed.
type Rule struct{}

var _ engine.Rule = Rule{}

// New creates the import gating rule.
func New() Rule {
	return Rule{}
}

// ID implements [engine.Rule].
func (Rule) ID() diag.RuleID {
	return diag.RuleImportGating
}

// DefaultSeverity implements [engine.Rule].
func (Rule) DefaultSeverity() diag.Severity {
	return diag.SeverityError
}

// Run implements [engine.Rule].
func (Rule) Run(_ context.Context, fc *engine.FileContext) []diag.Finding {
	patterns := fc.Config.AllowImports
	if len(patterns) == 0 || fc.Library().InLibrary(fc.Pkg) {
		return nil
	}

	filename := fc.Filename()
	if Allowed(patterns, filename) {
		return nil
	}

	var findings []diag.Finding

	for _, imp := range fc.File.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || !fc.Library().ImportsLibrary(path) {
			continue
		}

		findings = append(findings, diag.Finding{
			Code:    diag.ImportGateDenied,
			Pos:     imp.Pos(),
			End:     imp.End(),
			Message: fmt.Sprintf("Import of %q is not allowed in this file", path),
		})
	}

	return findings
}

// Allowed reports whether a slash-separated file name matches one of the glob patterns.
// Malformed patterns never match.
func Allowed(patterns []string, filename string) bool {
	name := strings.TrimPrefix(filename, "/")

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "/")

		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}
