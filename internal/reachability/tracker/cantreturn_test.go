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

package tracker_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/outcomeguard/internal/reachability/tracker"
	"fillmore-labs.com/outcomeguard/internal/testsource"
)

func TestCantReturn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"log.Fatal", `log.Fatal("x")`, true},
		{"Logger.Fatalf", `log.Default().Fatalf("x")`, true},
		{"os.Exit", `os.Exit(1)`, true},
		{"runtime.Goexit", `runtime.Goexit()`, true},
		{"panic", `panic("x")`, true},
		{"parenthesized", `(os.Exit)(1)`, true},
		{"println", `println("x")`, false},
		{"log.Print", `log.Print("x")`, false},
		{"shadowed panic", "panic := log.Print\npanic(\"x\")", false},
		{"library Must", "outcome.Must(outcome.Ok[int, error](1))", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "_ = log.Print\n_ = os.Exit\n_ = runtime.Goexit\n" + tt.src
			fset, f, _, body := testsource.Parse(t, src, "log", "os", "runtime")
			_, info := testsource.Check(t, fset, f)

			var last *ast.CallExpr

			for c := range body.Preorder((*ast.ExprStmt)(nil)) {
				if call, ok := c.Node().(*ast.ExprStmt).X.(*ast.CallExpr); ok {
					last = call
				}
			}

			if last == nil {
				t.Fatal("No call statement found")
			}

			if got := CantReturn(info, last); got != tt.want {
				t.Errorf("CantReturn(%s) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}
