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

package codes

import "test/outcome"

// Status is a tagged union discriminated by an integer code.
type Status interface { // want Status:`variants\(Code: 400, 503\)`
	error
	Code() int
	status()
}

type BadRequest struct{}

func (BadRequest) Code() int     { return 400 }
func (BadRequest) status()       {}
func (BadRequest) Error() string { return "bad request" }

type Unavailable struct{}

func (Unavailable) Code() int     { return 503 }
func (Unavailable) status()       {}
func (Unavailable) Error() string { return "unavailable" }

func handle(o outcome.Outcome[string, Status]) int {
	switch o.UnwrapErr().Code() { // want `Missing failure variants "503"`
	case 400:
		return 1
	}

	return 0
}
