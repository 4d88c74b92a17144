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

package config

import "fillmore-labs.com/outcomeguard/internal/diag"

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// ExhaustiveRule enables exhaustiveness checks of tagged-union failure handling.
	ExhaustiveRule RuleFlags = 1 << iota

	// UnsafeExtractionRule enables narrowing-aware classification of aborting extractions.
	UnsafeExtractionRule

	// MustUseRule enables reports of discarded Outcome values.
	MustUseRule

	// ImportGatingRule enables path-based restrictions of Outcome library imports.
	ImportGatingRule
)

// RuleFlag returns the [RuleFlags] bit for a rule identifier.
func RuleFlag(id diag.RuleID) RuleFlags {
	return 1 << id
}

// Rules is the set of enabled rules.
type Rules = BitMask[RuleFlags]

// DefaultRules returns the rules enabled by default.
func DefaultRules() Rules {
	return NewBitMask(ExhaustiveRule | UnsafeExtractionRule | MustUseRule | ImportGatingRule)
}

// Behavior represents configuration options for the rules.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// UnsafeCallSites reports aborting extractions on outcomes of unknown variant.
	UnsafeCallSites
)

// Behaviors is the set of enabled behavioral options.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the behavioral options enabled by default.
func DefaultBehavior() Behaviors {
	return NewBitMask[Behavior]()
}
