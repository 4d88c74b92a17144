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

// Package result re-exports the Outcome library under other names.
package result

import "test/outcome"

// Result is an Outcome failing with an error.
type Result[T any] = outcome.Outcome[T, error]

// Of wraps a value and an error.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return outcome.Fail[T](err)
	}

	return outcome.Ok[T, error](v)
}
