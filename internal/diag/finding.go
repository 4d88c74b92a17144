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

import (
	"go/token"
	"strings"
)

// Related is a secondary span of a [Finding], used to jump to the cause.
type Related struct {
	Pos, End token.Pos
	Message  string
}

// Payload carries machine-checkable data for downstream fix generation.
type Payload struct {
	// Variants lists tagged-union variants, e.g. the missing ones.
	Variants []string
}

// Finding is one structured diagnostic produced by a rule.
//
// Findings are only valid for the syntax tree that produced them.
type Finding struct {
	Code     Code
	Severity Severity // SeverityDefault resolves to the rule's configured severity
	Fixed    bool     // Severity is not configurable

	Pos, End token.Pos
	Message  string

	Related []Related
	Payload *Payload
}

// Text returns the message suffixed with the code identifier and the resolved severity,
// e.g. "Outcome discarded (OG4001, error)".
func (f Finding) Text() string {
	var b strings.Builder

	b.Grow(len(f.Message) + 20)
	b.WriteString(f.Message)   // ignore error
	b.WriteString(" (")        // ignore error
	b.WriteString(f.Code.ID()) // ignore error

	if f.Severity != SeverityDefault {
		b.WriteString(", ")                // ignore error
		b.WriteString(f.Severity.String()) // ignore error
	}

	b.WriteByte(')') // ignore error

	return b.String()
}

// Category returns the code identifier qualified by the resolved severity, e.g. "OG3001/error".
func (f Finding) Category() string {
	if f.Severity == SeverityDefault {
		return f.Code.ID()
	}

	return f.Code.ID() + "/" + f.Severity.String()
}

// Quote formats a list of names into a human-readable string (e.g., `"a", "b" and "c"`).
func Quote(names []string) string {
	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			all.WriteString(separator) // ignore error
		}

		all.WriteByte('"')    // ignore error
		all.WriteString(name) // ignore error
		all.WriteByte('"')    // ignore error
	}

	return all.String()
}
