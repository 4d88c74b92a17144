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

package narrowing

//go:generate go tool stringer -type Fact -linecomment

// Fact is the statically known variant of an Outcome value at a program point.
type Fact uint8

const (
	// Unknown means the variant is not statically known.
	Unknown Fact = iota // unknown

	// DefinitelySuccess means the value is the success variant.
	DefinitelySuccess // success

	// DefinitelyFailure means the value is the failure variant.
	DefinitelyFailure // failure
)

// Opposite returns the other definite fact.
func (f Fact) Opposite() Fact {
	switch f {
	case DefinitelySuccess:
		return DefinitelyFailure

	case DefinitelyFailure:
		return DefinitelySuccess

	default:
		return Unknown
	}
}
