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

// Package level defines the public severity levels of outcomeguard findings.
package level

import (
	"fmt"
	"strings"
)

// Severity specifies the importance of a rule's findings.
type Severity uint8

const (
	// SeverityDefault keeps the rule's built-in severity.
	SeverityDefault Severity = iota

	// SeveritySuggestion is for advisory findings.
	SeveritySuggestion

	// SeverityWarning is for likely defects.
	SeverityWarning

	// SeverityError is for certain defects.
	SeverityError
)

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityDefault:
		return []byte("default"), nil

	case SeveritySuggestion:
		return []byte("suggestion"), nil

	case SeverityWarning:
		return []byte("warning"), nil

	case SeverityError:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown severity level %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "default":
		*s = SeverityDefault

	case "suggestion", "hint", "info":
		*s = SeveritySuggestion

	case "warning", "warn":
		*s = SeverityWarning

	case "error":
		*s = SeverityError

	default:
		return fmt.Errorf("unknown severity level %q", string(text))
	}

	return nil
}
