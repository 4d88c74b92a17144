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

// Severity defines the importance of a [Finding].
type Severity uint8

const (
	// SeverityDefault defers to the rule's configured severity.
	SeverityDefault Severity = iota

	// SeveritySuggestion is for advisory findings.
	SeveritySuggestion

	// SeverityWarning is for likely defects.
	SeverityWarning

	// SeverityError is for certain defects.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDefault:
		return "default"

	case SeveritySuggestion:
		return "suggestion"

	case SeverityWarning:
		return "warning"

	case SeverityError:
		return "error"

	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}
