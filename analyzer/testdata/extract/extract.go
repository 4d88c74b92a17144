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

package extract

import (
	"errors"
	"log"

	"test/outcome"
)

func load() outcome.Outcome[int, error] {
	return outcome.Ok[int, error](1)
}

func alwaysPanics() int {
	o := load()
	if o.IsErr() {
		return o.Unwrap() // want `Unwrap always panics: o is a failure here`
	}

	return o.Unwrap() // want `Unwrap is redundant: o is a success here`
}

func constructor() int {
	return outcome.Fail[int, error](errors.New("boom")).Unwrap() // want `Unwrap always panics`
}

func must() int {
	o := load()
	if ok := o.IsOk(); !ok {
		return outcome.Must(o) // want `Must always panics: o is a failure here`
	}

	return 0
}

func expect() int {
	o := load()
	if _, ok := o.Value(); ok {
		return o.Expect("loaded") // want `Expect is redundant`
	}

	return o.UnwrapOr(0)
}

func unknown() int {
	return load().Unwrap()
}

func inOutcomeFunc() outcome.Outcome[int, error] {
	v := load().Unwrap() // want `Don't use Unwrap inside a function returning an Outcome`

	return outcome.Ok[int, error](v + 1)
}

func abortInOutcomeFunc(fail bool) outcome.Outcome[int, error] {
	if fail {
		log.Fatal("giving up") // want `log.Fatal aborts inside a function returning an Outcome`
	}

	if fail {
		panic("unreachable") // want `panic aborts inside a function returning an Outcome`
	}

	return outcome.Ok[int, error](0)
}

func suppressed() int {
	o := outcome.Fail[int, error](errors.New("boom"))

	return o.Unwrap() //nolint:outcomeguard
}
