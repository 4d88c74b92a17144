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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/outcomeguard/internal/diag"
)

func TestCodeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  Code
		id    string
		rule  RuleID
		owned bool
	}{
		{ExhaustiveMissing, "OG2001", RuleExhaustive, true},
		{ExtractAlwaysPanics, "OG3001", RuleUnsafeExtraction, true},
		{MustUseAsync, "OG4002", RuleMustUse, true},
		{ImportGateDenied, "OG5001", RuleImportGating, true},
		{EngineInfo, "OG1000", 0, false},
		{UnknownCode, "OG0000", 0, false},
		{Code(7000), "OG0000", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.id, tt.code.ID())

			rule, ok := tt.code.Rule()
			assert.Equal(t, tt.owned, ok)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestCodeTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Failure variants not handled", ExhaustiveMissing.Title())
	assert.Equal(t, "Unknown", Code(2999).Title())
	assert.Equal(t, "[OG4001]: Outcome discarded", MustUseOutcome.String())
}

func TestFindingText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		severity Severity
		text     string
		category string
	}{
		{"unresolved", SeverityDefault, "Unwrap is redundant (OG3002)", "OG3002"},
		{"suggestion", SeveritySuggestion, "Unwrap is redundant (OG3002, suggestion)", "OG3002/suggestion"},
		{"error", SeverityError, "Unwrap is redundant (OG3002, error)", "OG3002/error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := Finding{Code: ExtractRedundant, Severity: tt.severity, Message: "Unwrap is redundant"}

			assert.Equal(t, tt.text, f.Text())
			assert.Equal(t, tt.category, f.Category())
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" and "b"`},
		{[]string{"a", "b", "c"}, `"a", "b" and "c"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.names))
	}
}

func TestParseRuleID(t *testing.T) {
	t.Parallel()

	for _, id := range AllRules() {
		got, ok := ParseRuleID(" " + id.String() + " ")
		if assert.True(t, ok, id.String()) {
			assert.Equal(t, id, got)
		}
	}

	_, ok := ParseRuleID("scope")
	assert.False(t, ok)

	assert.Equal(t, "RuleID(9)", RuleID(9).String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
	assert.Equal(t, "warning", SeverityWarning.String())
}
