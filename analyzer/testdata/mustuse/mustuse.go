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

package mustuse

import (
	"context"

	"test/outcome"
)

func save() outcome.Outcome[int, error] {
	return outcome.Ok[int, error](1)
}

func pair() (outcome.Outcome[int, error], bool) {
	return save(), true
}

func discard(ctx context.Context) {
	save() // want `Outcome returned by save is discarded, handle it or assign it to _`

	pair() // want `Outcome returned by pair is discarded`

	go save() // want `Outcome returned by save is discarded by go statement`

	defer save() // want `Outcome returned by save is discarded by defer statement`

	outcome.Go(save) // want `Async Outcome returned by outcome.Go is discarded and never awaited`

	_ = save()

	a := outcome.Go(save)
	if o := a.Await(ctx); o.IsOk() {
		println("saved")
	}
}
