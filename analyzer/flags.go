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

package analyzer

import (
	"flag"
	"strings"

	"go.uber.org/zap"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	cfg := r.Config

	for _, id := range diag.AllRules() {
		flags.Var(NewRuleValue(&cfg.Rules, config.RuleFlag(id)), id.String(), "enable "+id.String()+" checks")
	}

	flags.Var(NewBehaviorValue(&cfg.Behavior, config.UnsafeCallSites), "unsafe-call-sites",
		"report extractions on values of unknown variant")
	flags.Var(NewBehaviorValue(&cfg.Behavior, config.IncludeGenerated), "generated", "check generated files")

	flags.Var(listValue{&cfg.LibraryPaths}, "library-paths", "comma separated import paths of the Outcome library")
	flags.Var(listValue{&cfg.Discriminants}, "discriminants", "comma separated method names carrying a variant tag")
	flags.Var(listValue{&cfg.AllowImports}, "allow-imports",
		"comma separated glob patterns of files allowed to import the Outcome library")

	flags.IntVar(&cfg.MaxVariants, "max-variants", cfg.MaxVariants, "largest tagged union analyzed")

	flags.Var(severityValue{r}, "severity", "comma separated severity overrides, e.g. must-use=error")
	flags.Var(&settingsValue{r: r}, "config", "read settings from a YAML file")
}

// NewRuleValue returns a boolean [flag.Value] toggling one rule.
func NewRuleValue(rules *config.Rules, rule config.RuleFlags) flag.Getter {
	return boolValue[config.RuleFlags, *config.Rules]{flags: rules, value: rule}
}

// NewBehaviorValue returns a boolean [flag.Value] toggling one behavior.
func NewBehaviorValue(behavior *config.Behaviors, b config.Behavior) flag.Getter {
	return boolValue[config.Behavior, *config.Behaviors]{flags: behavior, value: b}
}

type listValue struct{ list *[]string }

// Set implements [flag.Value].
func (l listValue) Set(s string) error {
	var list []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	*l.list = list

	return nil
}

// String implements [flag.Value].
func (l listValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}

type severityValue struct{ r *run.Options }

// Set implements [flag.Value].
func (v severityValue) Set(s string) error {
	for pair := range strings.SplitSeq(s, ",") {
		if pair = strings.TrimSpace(pair); pair == "" {
			continue
		}

		rule, name, ok := strings.Cut(pair, "=")
		if !ok {
			v.r.Warn("Malformed severity override, expected rule=level", zap.String("override", pair))

			continue
		}

		severityName(strings.TrimSpace(rule), strings.TrimSpace(name)).apply(v.r)
	}

	return nil
}

// String implements [flag.Value].
func (v severityValue) String() string {
	if v.r == nil || v.r.Config == nil {
		return ""
	}

	var overrides []string

	for id, severity := range v.r.Config.Severities {
		if severity != diag.SeverityDefault {
			overrides = append(overrides, diag.RuleID(id).String()+"="+severity.String())
		}
	}

	return strings.Join(overrides, ",")
}

type settingsValue struct {
	r    *run.Options
	name string
}

// Set implements [flag.Value].
func (v *settingsValue) Set(name string) error {
	s, err := LoadSettings(name)
	if err != nil {
		return err
	}

	v.name = name
	Options(s.Options()).apply(v.r)

	return nil
}

// String implements [flag.Value].
func (v *settingsValue) String() string {
	if v == nil {
		return ""
	}

	return v.name
}
