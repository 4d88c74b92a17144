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

import "fmt"

// Code is a stable diagnostic code.
//
// Codes are partitioned into fixed ranges per rule family and never reused:
//
//	1000-1999  engine
//	2000-2999  exhaustiveness
//	3000-3999  unsafe extraction
//	4000-4999  must-use
//	5000-5999  import gating
type Code uint16

const (
	// UnknownCode is not emitted.
	UnknownCode Code = 0

	// EngineInfo is reserved for engine level messages.
	EngineInfo Code = 1000

	// ExhaustiveInfo marks the beginning of the exhaustiveness range.
	ExhaustiveInfo Code = 2000
	// ExhaustiveMissing reports failure variants without a branch.
	ExhaustiveMissing Code = 2001
	// ExhaustiveDefaultSingle reports a default branch covering exactly one variant.
	ExhaustiveDefaultSingle Code = 2002
	// ExhaustiveDuplicateArms reports textually identical branches.
	ExhaustiveDuplicateArms Code = 2003
	// ExhaustiveReraise reports a failure handler that only re-panics.
	ExhaustiveReraise Code = 2004

	// ExtractInfo marks the beginning of the unsafe extraction range.
	ExtractInfo Code = 3000
	// ExtractAlwaysPanics reports an extraction on a known failure.
	ExtractAlwaysPanics Code = 3001
	// ExtractRedundant reports an extraction on a known success.
	ExtractRedundant Code = 3002
	// ExtractUnsafeCallSite reports an extraction on an unknown variant.
	ExtractUnsafeCallSite Code = 3003
	// ExtractInOutcomeFunc reports an aborting extraction inside a function returning an Outcome.
	ExtractInOutcomeFunc Code = 3004
	// AbortInOutcomeFunc reports an aborting statement inside a function returning an Outcome.
	AbortInOutcomeFunc Code = 3005

	// MustUseInfo marks the beginning of the must-use range.
	MustUseInfo Code = 4000
	// MustUseOutcome reports a discarded Outcome.
	MustUseOutcome Code = 4001
	// MustUseAsync reports a discarded asynchronous Outcome.
	MustUseAsync Code = 4002

	// ImportGateInfo marks the beginning of the import gating range.
	ImportGateInfo Code = 5000
	// ImportGateDenied reports an import of the Outcome library outside the allowed paths.
	ImportGateDenied Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown",
	EngineInfo:              "Engine information",
	ExhaustiveInfo:          "Exhaustiveness information",
	ExhaustiveMissing:       "Failure variants not handled",
	ExhaustiveDefaultSingle: "Default branch covers a single variant",
	ExhaustiveDuplicateArms: "Identical failure branches",
	ExhaustiveReraise:       "Failure handler only re-panics",
	ExtractInfo:             "Extraction information",
	ExtractAlwaysPanics:     "Extraction always panics",
	ExtractRedundant:        "Redundant extraction",
	ExtractUnsafeCallSite:   "Unsafe extraction",
	ExtractInOutcomeFunc:    "Aborting extraction in Outcome function",
	AbortInOutcomeFunc:      "Abort in Outcome function",
	MustUseInfo:             "Must-use information",
	MustUseOutcome:          "Outcome discarded",
	MustUseAsync:            "Async Outcome discarded",
	ImportGateInfo:          "Import gating information",
	ImportGateDenied:        "Outcome import not allowed here",
}

// ID returns the printable identifier of the code, e.g. "OG2001".
func (c Code) ID() string {
	if c >= 1000 && c < 6000 {
		return fmt.Sprintf("OG%04d", uint16(c))
	}

	return "OG0000"
}

// Title returns a short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}

	return desc
}

// Rule returns the rule family owning the code.
func (c Code) Rule() (RuleID, bool) {
	switch c / 1000 {
	case 2:
		return RuleExhaustive, true

	case 3:
		return RuleUnsafeExtraction, true

	case 4:
		return RuleMustUse, true

	case 5:
		return RuleImportGating, true

	default:
		return 0, false
	}
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
