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

// Package analyzer implements the outcomeguard static analysis pass.
//
// # Overview
//
// OutcomeGuard checks Go code using an Outcome library, where a value is either
// a Success carrying a payload or a Failure carrying an error. It reports
//
//   - failure handlers that miss variants of a tagged error union,
//   - Unwrap, Expect and Must calls that panic or are redundant at the call site,
//   - Outcome values that are silently discarded,
//   - imports of the library outside an allow-list of files.
//
// # Example
//
//	func load(id string) outcome.Outcome[Config, FetchError] { ... }
//
//	func run() {
//	    o := load("main")
//	    if o.IsErr() {
//	        cfg := o.Unwrap() // always panics here
//	        ...
//	    }
//	}
//
// # Tagged Unions
//
// A sealed interface (one with an unexported method) whose implementations in
// the same package return a literal constant from a discriminant method, by
// default Kind, forms a tagged union. Switches over that discriminant or over
// the member types of a failure value are checked for exhaustiveness, also
// across package boundaries.
//
// # Severity
//
// Every finding carries a code and a resolved severity, e.g. "(OG4001, warning)" at the
// end of the message and "OG4001/warning" as the diagnostic category. The -severity flag
// overrides the severity per rule, except for calls that always panic, which stay errors.
//
// # Suppression
//
// Findings are suppressed by a //nolint:outcomeguard comment on the reported
// line. The same comment as the last line of the package comment excludes the file.
package analyzer
