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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/outcomeguard/analyzer"
	"fillmore-labs.com/outcomeguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.RuleFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.MustUseRule,
			args:    []string{"-exhaustive"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ExhaustiveRule,
			args:    []string{"-exhaustive=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.ExhaustiveRule,
			args:    []string{"-exhaustive=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Rules
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ExhaustiveRule
			fv := NewRuleValue(&flags, value)
			fs.Var(fv, "exhaustive", "enable exhaustive checks")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ExhaustiveRule enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behaviors

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&flags, config.UnsafeCallSites), "unsafe-call-sites", "report unknown variants")

	if err := fs.Parse([]string{"-unsafe-call-sites=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Rules
	flags.Set(config.MustUseRule, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewRuleValue(&flags, config.MustUseRule)
	fs.Var(fv, "must-use", "enable must-use checks")

	const expectedUsage = `
  -must-use
    	enable must-use checks (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{
		"exhaustive", "unsafe-extraction", "must-use", "import-gating",
		"unsafe-call-sites", "generated", "library-paths", "discriminants",
		"allow-imports", "max-variants", "severity", "config",
	} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Missing flag -%s", name)
		}
	}

	if err := a.Flags.Parse([]string{"-library-paths=a/b, c/d", "-must-use=false", "-severity=must-use=error"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := a.Flags.Lookup("library-paths").Value.String(), "a/b,c/d"; got != want {
		t.Errorf("library-paths = %q, want %q", got, want)
	}

	if got, want := a.Flags.Lookup("must-use").Value.String(), "false"; got != want {
		t.Errorf("must-use = %q, want %q", got, want)
	}

	if got, want := a.Flags.Lookup("severity").Value.String(), "must-use=error"; got != want {
		t.Errorf("severity = %q, want %q", got, want)
	}
}
