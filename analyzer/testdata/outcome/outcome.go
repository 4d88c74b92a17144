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

// Package outcome is a minimal Outcome library.
package outcome

import "context"

type brand struct{}

type okTag struct{}

type errTag struct{}

// Outcome is either a Success or a Failure.
type Outcome[T, E any] interface {
	IsOk() bool
	IsErr() bool
	Unwrap() T
	Expect(msg string) T
	UnwrapErr() E
	UnwrapOr(def T) T
	Value() (T, bool)
	Failure() (E, bool)
	Handle(ok func(T), fail func(E))
	sealed(brand)
}

// Success carries a payload.
type Success[T, E any] struct {
	tag     okTag
	brand   brand
	Payload T
}

// Failure carries an error.
type Failure[T, E any] struct {
	tag   errTag
	brand brand
	Err   E
}

func (Success[T, E]) sealed(brand) {}

func (s Success[T, E]) IsOk() bool { return true }
func (s Success[T, E]) IsErr() bool { return false }
func (s Success[T, E]) Unwrap() T { return s.Payload }
func (s Success[T, E]) Expect(string) T { return s.Payload }
func (s Success[T, E]) UnwrapErr() E { panic("outcome: UnwrapErr on success") }
func (s Success[T, E]) UnwrapOr(T) T { return s.Payload }
func (s Success[T, E]) Value() (T, bool) { return s.Payload, true }
func (s Success[T, E]) Failure() (e E, _ bool) { return e, false }
func (s Success[T, E]) Handle(ok func(T), _ func(E)) { ok(s.Payload) }

func (Failure[T, E]) sealed(brand) {}

func (f Failure[T, E]) IsOk() bool { return false }
func (f Failure[T, E]) IsErr() bool { return true }
func (f Failure[T, E]) Unwrap() T { panic(f.Err) }
func (f Failure[T, E]) Expect(msg string) T { panic(msg) }
func (f Failure[T, E]) UnwrapErr() E { return f.Err }
func (f Failure[T, E]) UnwrapOr(def T) T { return def }
func (f Failure[T, E]) Value() (t T, _ bool) { return t, false }
func (f Failure[T, E]) Failure() (E, bool) { return f.Err, true }
func (f Failure[T, E]) Handle(_ func(T), fail func(E)) { fail(f.Err) }

// Ok creates a success.
func Ok[T, E any](v T) Outcome[T, E] { return Success[T, E]{Payload: v} }

// Fail creates a failure.
func Fail[T, E any](e E) Outcome[T, E] { return Failure[T, E]{Err: e} }

// Must returns the payload or panics.
func Must[T, E any](o Outcome[T, E]) T { return o.Unwrap() }

// Match folds an Outcome into a single value.
func Match[T, E, R any](o Outcome[T, E], ok func(T) R, fail func(E) R) R {
	if v, isOk := o.Value(); isOk {
		return ok(v)
	}

	return fail(o.UnwrapErr())
}

// Async is an Outcome computed concurrently.
type Async[T, E any] struct {
	brand brand
	ch    <-chan Outcome[T, E]
}

// Await waits for the Outcome.
func (a Async[T, E]) Await(_ context.Context) Outcome[T, E] {
	return <-a.ch
}

// Go runs f concurrently.
func Go[T, E any](f func() Outcome[T, E]) Async[T, E] {
	ch := make(chan Outcome[T, E], 1)
	go func() { ch <- f() }()

	return Async[T, E]{ch: ch}
}
