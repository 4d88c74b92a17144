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

package reexport

import (
	"errors"
	"strconv"

	"test/lookalike"
	"test/outcome"
	"test/result"
)

func parse(s string) result.Result[int] {
	v, err := strconv.Atoi(s)

	return result.Of(v, err)
}

func aliased() int {
	r := parse("1")
	if r.IsErr() {
		return r.Unwrap() // want `Unwrap always panics: r is a failure here`
	}

	parse("2") // want `Outcome returned by parse is discarded`

	return outcome.Must(r) // want `Must is redundant: r is a success here`
}

func notTheLibrary() int {
	o := lookalike.Fail[int](errors.New("boom"))
	if o.IsErr() {
		return o.Unwrap()
	}

	lookalike.Fail[int](nil)

	return 0
}
