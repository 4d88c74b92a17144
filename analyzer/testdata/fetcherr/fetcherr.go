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

// Package fetcherr declares the failures of a fetch operation.
package fetcherr

import "time"

// Kind tags a fetch failure.
type Kind string

// Fetch failure tags.
const (
	KindTimeout  Kind = "timeout"
	KindNotFound Kind = "not-found"
	KindDenied   Kind = "denied"
)

// FetchError is a tagged union of fetch failures.
type FetchError interface {
	error
	Kind() Kind
	fetchError()
}

// Timeout reports an expired deadline.
type Timeout struct{ After time.Duration }

func (Timeout) Kind() Kind { return KindTimeout }
func (Timeout) fetchError() {}
func (t Timeout) Error() string { return "timeout after " + t.After.String() }

// NotFound reports a missing resource.
type NotFound struct{ URL string }

func (NotFound) Kind() Kind { return KindNotFound }
func (NotFound) fetchError() {}
func (n NotFound) Error() string { return n.URL + " not found" }

// Denied reports a refused request.
type Denied struct{}

func (*Denied) Kind() Kind { return KindDenied }
func (*Denied) fetchError() {}
func (*Denied) Error() string { return "access denied" }

// ParseError is not a tagged union: Limit computes its tag.
type ParseError interface {
	error
	Kind() Kind
	parseError()
}

// Syntax reports malformed input.
type Syntax struct{}

func (Syntax) Kind() Kind { return "syntax" }
func (Syntax) parseError() {}
func (Syntax) Error() string { return "syntax error" }

// Limit reports an exceeded limit.
type Limit struct{ kind Kind }

func (l Limit) Kind() Kind { return l.kind }
func (Limit) parseError() {}
func (Limit) Error() string { return "limit exceeded" }

// StreamError is not a tagged union: Reset has no Kind method.
type StreamError interface {
	error
	streamError()
}

// Closed reports a closed stream.
type Closed struct{}

func (Closed) Kind() Kind { return "closed" }
func (Closed) streamError() {}
func (Closed) Error() string { return "stream closed" }

// Reset reports a reset stream.
type Reset struct{}

func (Reset) streamError() {}
func (Reset) Error() string { return "stream reset" }
