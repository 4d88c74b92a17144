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

// Package rules registers the closed set of rule families.
package rules

import (
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/engine"
	"fillmore-labs.com/outcomeguard/internal/rules/exhaustive"
	"fillmore-labs.com/outcomeguard/internal/rules/importgate"
	"fillmore-labs.com/outcomeguard/internal/rules/mustuse"
	"fillmore-labs.com/outcomeguard/internal/rules/unsafeextract"
)

// New returns the rule implementing id, or nil for an unknown identifier.
func New(id diag.RuleID) engine.Rule {
	switch id {
	case diag.RuleExhaustive:
		return exhaustive.New()

	case diag.RuleUnsafeExtraction:
		return unsafeextract.New()

	case diag.RuleMustUse:
		return mustuse.New()

	case diag.RuleImportGating:
		return importgate.New()

	default:
		return nil
	}
}

// All returns every rule in registration order.
func All() []engine.Rule {
	all := make([]engine.Rule, 0, diag.NumRules)
	for _, id := range diag.AllRules() {
		all = append(all, New(id))
	}

	return all
}
