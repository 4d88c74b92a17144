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

package diag

import "strings"

// RuleID identifies a rule family. The set is closed.
type RuleID uint8

//go:generate go tool stringer -type RuleID -linecomment
const (
	// RuleExhaustive checks tagged-union failure handling for exhaustiveness.
	RuleExhaustive RuleID = iota // exhaustive

	// RuleUnsafeExtraction classifies aborting extractions using narrowing.
	RuleUnsafeExtraction // unsafe-extraction

	// RuleMustUse reports discarded Outcome values.
	RuleMustUse // must-use

	// RuleImportGating restricts where the Outcome library may be imported.
	RuleImportGating // import-gating

	// NumRules is the number of rule families.
	NumRules int = iota
)

// AllRules returns all rule identifiers in registration order.
func AllRules() []RuleID {
	ids := make([]RuleID, NumRules)
	for i := range ids {
		ids[i] = RuleID(i)
	}

	return ids
}

// ParseRuleID returns the [RuleID] for a rule name as printed by [RuleID.String].
func ParseRuleID(name string) (RuleID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, id := range AllRules() {
		if id.String() == name {
			return id, true
		}
	}

	return 0, false
}
