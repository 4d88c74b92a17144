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

// Package lookalike declares types named like the Outcome library without being it.
package lookalike

// Outcome mimics the library's API.
type Outcome[T any] struct {
	value T
	err   error
}

func (o Outcome[T]) IsErr() bool { return o.err != nil }

func (o Outcome[T]) Unwrap() T {
	if o.err != nil {
		panic(o.err)
	}

	return o.value
}

// Fail creates a failed look-alike.
func Fail[T any](err error) Outcome[T] { return Outcome[T]{err: err} }
