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

package callsites

import "test/outcome"

func load() outcome.Outcome[int, error] {
	return outcome.Ok[int, error](1)
}

func unknown() int {
	return load().Unwrap() // want `Unwrap panics if load\(\) is a failure, check the variant first`
}

func checked() int {
	if o := load(); o.IsOk() {
		return o.Unwrap() // want `Unwrap is redundant`
	}

	return 0
}
