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

package identity

import "go/types"

// Info is the resolved identity of a type with respect to the Outcome library.
//
// When IsOutcome is false, Info is the zero value. An async wrapper is never a variant.
type Info struct {
	// IsOutcome reports whether the type is an Outcome, one of its variants or the async wrapper.
	IsOutcome bool

	// IsAsync reports whether the type is the async wrapper.
	IsAsync bool

	// IsSuccess reports whether the type is the success variant.
	IsSuccess bool

	// IsFailure reports whether the type is the failure variant.
	IsFailure bool

	// Success is the success payload type, nil when it could not be extracted.
	Success types.Type

	// Failure is the failure payload type, nil when it could not be extracted.
	Failure types.Type
}

// Recognized reports whether the type is known to the library at all.
func (i Info) Recognized() bool {
	return i.IsOutcome
}

// IsVariant reports whether the type is statically one of the two variants.
func (i Info) IsVariant() bool {
	return i.IsSuccess || i.IsFailure
}
