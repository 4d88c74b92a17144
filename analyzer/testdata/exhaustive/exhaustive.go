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

package exhaustive

import (
	"test/fetcherr"
	"test/outcome"
)

type result = outcome.Outcome[string, fetcherr.FetchError]

func missingInMatch(o result) string {
	return outcome.Match(o,
		func(body string) string { return body },
		func(e fetcherr.FetchError) string {
			switch e.Kind() { // want `Missing failure variants "denied"`
			case fetcherr.KindTimeout:
				return "retry"

			case fetcherr.KindNotFound:
				return "gone"
			}

			return ""
		})
}

func completeInMatch(o result) string {
	return outcome.Match(o,
		func(body string) string { return body },
		func(e fetcherr.FetchError) string {
			switch e.Kind() {
			case fetcherr.KindTimeout:
				return "retry"

			case fetcherr.KindNotFound:
				return "gone"

			case fetcherr.KindDenied:
				return "login"
			}

			return ""
		})
}

func typeSwitchInHandle(o result) {
	o.Handle(func(string) {}, func(e fetcherr.FetchError) {
		switch e.(type) { // want `Missing failure variants "not-found" and "denied"`
		case fetcherr.Timeout:
		}
	})
}

func pointerMember(o result) {
	o.Handle(func(string) {}, func(e fetcherr.FetchError) {
		switch e.(type) {
		case fetcherr.Timeout, fetcherr.NotFound:
			println("retry")

		case *fetcherr.Denied:
			println("login")
		}
	})
}

func defaultSingle(o result) int {
	err := o.UnwrapErr()

	switch err.Kind() { // want `Default branch catches only variant "denied", use an explicit case`
	case fetcherr.KindTimeout:
		return 1

	case fetcherr.KindNotFound:
		return 2

	default:
		return 3
	}
}

func defaultMany(o result) int {
	switch o.UnwrapErr().Kind() {
	case fetcherr.KindTimeout:
		return 1

	default:
		return 3
	}
}

func duplicateArms(o result) {
	switch e := o.UnwrapErr(); e.Kind() {
	case fetcherr.KindTimeout:
		println("retry")

	case fetcherr.KindNotFound: // want `Branch is identical to an earlier one`
		println( "retry" )

	case fetcherr.KindDenied:
		println("login")
	}
}

func failureResult(o result) {
	if err, ok := o.Failure(); ok {
		switch err.Kind() { // want `Missing failure variants "timeout"`
		case fetcherr.KindNotFound, fetcherr.KindDenied:
		}
	}
}

func failureField(f outcome.Failure[string, fetcherr.FetchError]) {
	switch f.Err.(type) { // want `Missing failure variants "timeout" and "not-found"`
	case *fetcherr.Denied:
	}
}

func reraise(o result) string {
	return outcome.Match(o,
		func(body string) string { return body },
		func(e fetcherr.FetchError) string { panic(e) }, // want `Failure handler only re-panics`
	)
}

func reraiseInHandle(o result) {
	o.Handle(func(string) {}, func(e fetcherr.FetchError) { panic(e) }) // want `Failure handler only re-panics`
}

func emptySwitch(o result) {
	switch o.UnwrapErr().Kind() { // want `Missing failure variants "timeout", "not-found" and "denied"`
	}
}

func unknownTag(o result) {
	switch o.UnwrapErr().Kind() { // want `Missing failure variants "timeout", "not-found" and "denied"`
	case "throttled":
	}
}

func memberWithoutDiscriminant(o outcome.Outcome[int, fetcherr.StreamError]) {
	switch o.UnwrapErr().(type) {
	case fetcherr.Closed:
	}
}

func notAFailureChannel(e fetcherr.FetchError) {
	switch e.Kind() {
	case fetcherr.KindTimeout:
	}
}

func nonConstantCase(o result) {
	k := fetcherr.KindTimeout

	switch o.UnwrapErr().Kind() {
	case k:
	}
}

func notTagged(o outcome.Outcome[int, fetcherr.ParseError]) {
	switch o.UnwrapErr().Kind() {
	case "syntax":
	}
}

func plainError(o outcome.Outcome[int, error]) {
	switch o.UnwrapErr().(type) {
	case interface{ Timeout() bool }:
	}
}
