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

package importgate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/outcomeguard/internal/rules/importgate"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		filename string
		want     bool
	}{
		{"no patterns", nil, "/src/app/main.go", false},
		{"double star", []string{"**/domain/**"}, "/src/app/domain/user/user.go", true},
		{"single star", []string{"**/domain/*.go"}, "/src/app/domain/user/user.go", false},
		{"relative", []string{"src/app/*.go"}, "/src/app/main.go", true},
		{"second pattern", []string{"**/infra/**", "**/app/*.go"}, "/src/app/main.go", true},
		{"malformed", []string{"**/[app/*.go"}, "/src/app/main.go", false},
		{"test files", []string{"**/*_test.go"}, "/src/app/main_test.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Allowed(tt.patterns, tt.filename))
		})
	}
}
