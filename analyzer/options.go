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
	"log/slog"
	"strings"

	"go.uber.org/zap"

	"fillmore-labs.com/outcomeguard/analyzer/level"
	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/logging"
	"fillmore-labs.com/outcomeguard/internal/run"
)

// Option configures specific behavior of a [New] outcomeguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithExhaustive is an [Option] to configure whether exhaustiveness checks are enabled.
func WithExhaustive(exhaustive bool) Option {
	return ruleOption{rule: diag.RuleExhaustive, enabled: exhaustive}
}

// WithUnsafeExtraction is an [Option] to configure whether unsafe extraction checks are enabled.
func WithUnsafeExtraction(unsafeExtraction bool) Option {
	return ruleOption{rule: diag.RuleUnsafeExtraction, enabled: unsafeExtraction}
}

// WithMustUse is an [Option] to configure whether discarded Outcome values are reported.
func WithMustUse(mustUse bool) Option {
	return ruleOption{rule: diag.RuleMustUse, enabled: mustUse}
}

// WithImportGating is an [Option] to configure whether library imports are restricted.
func WithImportGating(importGating bool) Option {
	return ruleOption{rule: diag.RuleImportGating, enabled: importGating}
}

type ruleOption struct {
	rule    diag.RuleID
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Config.Rules.Set(config.RuleFlag(o.rule), o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.rule.String(), o.enabled)
}

// WithSeverity is an [Option] overriding the severity of a rule's findings.
// The rule is named as in the flags, e.g. "must-use". Unknown names are ignored with a warning.
func WithSeverity(rule string, severity level.Severity) Option {
	return severityOption{rule: rule, severity: severity}
}

type severityOption struct {
	rule     string
	severity level.Severity
}

func (o severityOption) apply(r *run.Options) {
	id, ok := diag.ParseRuleID(o.rule)
	if !ok {
		r.Warn("Unknown rule in severity override, ignoring", zap.String(logging.FieldRule, o.rule))

		return
	}

	r.Config.Severities[id] = diag.Severity(o.severity)
}

func (o severityOption) LogAttr() slog.Attr {
	text, _ := o.severity.MarshalText()

	return slog.String("severity."+o.rule, string(text))
}

// severityName is an [Option] overriding the severity of a rule by level name.
// Unknown levels are ignored with a warning.
func severityName(rule, name string) Option {
	return severityNameOption{rule: rule, name: name}
}

type severityNameOption struct{ rule, name string }

func (o severityNameOption) apply(r *run.Options) {
	var severity level.Severity
	if err := severity.UnmarshalText([]byte(o.name)); err != nil {
		r.Warn("Unknown severity level, keeping default",
			zap.String(logging.FieldRule, o.rule), zap.String("level", o.name))

		return
	}

	severityOption{rule: o.rule, severity: severity}.apply(r)
}

func (o severityNameOption) LogAttr() slog.Attr {
	return slog.String("severity."+o.rule, o.name)
}

// WithUnsafeCallSites is an [Option] to report extractions on values of unknown variant.
func WithUnsafeCallSites(unsafeCallSites bool) Option {
	return behaviorOption{name: "unsafe-call-sites", flag: config.UnsafeCallSites, value: unsafeCallSites}
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{name: "generated", flag: config.IncludeGenerated, value: generated}
}

type behaviorOption struct {
	name  string
	flag  config.Behavior
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Config.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}

// WithLibraryPaths is an [Option] to configure the import paths of the Outcome library.
// Sub-packages of each path belong to the library.
func WithLibraryPaths(paths ...string) Option {
	return listOption{name: "library-paths", list: paths, field: func(c *config.Config) *[]string { return &c.LibraryPaths }}
}

// WithDiscriminants is an [Option] to configure the method names carrying the tag of a union member.
func WithDiscriminants(names ...string) Option {
	return listOption{name: "discriminants", list: names, field: func(c *config.Config) *[]string { return &c.Discriminants }}
}

// WithAllowImports is an [Option] to restrict library imports to files matching one of the glob patterns.
func WithAllowImports(patterns ...string) Option {
	return listOption{name: "allow-imports", list: patterns, field: func(c *config.Config) *[]string { return &c.AllowImports }}
}

type listOption struct {
	name  string
	list  []string
	field func(c *config.Config) *[]string
}

func (o listOption) apply(r *run.Options) {
	*o.field(r.Config) = append([]string(nil), o.list...)
}

func (o listOption) LogAttr() slog.Attr {
	return slog.String(o.name, strings.Join(o.list, ","))
}

// WithMaxVariants is an [Option] to configure the largest tagged union analyzed.
func WithMaxVariants(maxVariants int) Option { return maxVariantsOption{maxVariants: maxVariants} }

type maxVariantsOption struct{ maxVariants int }

func (o maxVariantsOption) apply(r *run.Options) {
	r.Config.MaxVariants = o.maxVariants
}

func (o maxVariantsOption) LogAttr() slog.Attr {
	return slog.Int("max-variants", o.maxVariants)
}

// WithLogger is an [Option] to set the logger for operational messages. A nil logger discards them.
func WithLogger(logger *zap.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger == nil {
		r.Logger = logging.Nop()

		return
	}

	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
