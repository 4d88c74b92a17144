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

package config

import (
	"go/token"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"fillmore-labs.com/outcomeguard/internal/diag"
	"fillmore-labs.com/outcomeguard/internal/logging"
)

// DefaultLibraryPath is the import path of the Outcome library.
const DefaultLibraryPath = "fillmore-labs.com/outcome"

// DefaultDiscriminant is the default discriminant method name of tagged unions.
const DefaultDiscriminant = "Kind"

// DefaultMaxVariants is the largest tagged union analyzed for exhaustiveness.
const DefaultMaxVariants = 256

// Config is the resolved configuration of a run.
type Config struct {
	// Rules holds the enabled rules.
	Rules Rules

	// Behavior holds behavioral options.
	Behavior Behaviors

	// Severities holds per-rule severity overrides, [diag.SeverityDefault] for none.
	Severities [diag.NumRules]diag.Severity

	// Discriminants is the ordered list of discriminant method names.
	Discriminants []string

	// LibraryPaths are the import paths of the Outcome library.
	LibraryPaths []string

	// AllowImports are glob patterns of file paths allowed to import the Outcome library.
	AllowImports []string

	// MaxVariants is the largest tagged union analyzed for exhaustiveness.
	MaxVariants int
}

// Default returns a new [Config] with default values.
func Default() *Config {
	return &Config{
		Rules:         DefaultRules(),
		Behavior:      DefaultBehavior(),
		Discriminants: []string{DefaultDiscriminant},
		LibraryPaths:  []string{DefaultLibraryPath},
		MaxVariants:   DefaultMaxVariants,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	n := *c
	n.Discriminants = slices.Clone(c.Discriminants)
	n.LibraryPaths = slices.Clone(c.LibraryPaths)
	n.AllowImports = slices.Clone(c.AllowImports)

	return &n
}

// Normalize replaces malformed values by their defaults, field by field.
// It never fails; every fallback is logged as a warning.
func (c *Config) Normalize(logger *zap.Logger) {
	for i, s := range c.Severities {
		if s > diag.SeverityError {
			logger.Warn("Invalid severity, using rule default",
				zap.Stringer(logging.FieldRule, diag.RuleID(i)), zap.Uint8("severity", uint8(s)))

			c.Severities[i] = diag.SeverityDefault
		}
	}

	c.Discriminants = slices.DeleteFunc(c.Discriminants, func(name string) bool {
		if token.IsIdentifier(name) {
			return false
		}

		logger.Warn("Ignoring invalid discriminant name", zap.String("name", name))

		return true
	})
	c.Discriminants = compactUnsorted(c.Discriminants)

	if len(c.Discriminants) == 0 {
		c.Discriminants = []string{DefaultDiscriminant}
	}

	c.LibraryPaths = slices.DeleteFunc(c.LibraryPaths, func(path string) bool {
		if path != "" {
			return false
		}

		logger.Warn("Ignoring empty library path")

		return true
	})
	c.LibraryPaths = compactUnsorted(c.LibraryPaths)

	if len(c.LibraryPaths) == 0 {
		c.LibraryPaths = []string{DefaultLibraryPath}
	}

	c.AllowImports = slices.DeleteFunc(c.AllowImports, func(pattern string) bool {
		if doublestar.ValidatePattern(pattern) {
			return false
		}

		logger.Warn("Ignoring malformed import allow pattern", zap.String(logging.FieldPattern, pattern))

		return true
	})

	if c.MaxVariants <= 0 {
		if c.MaxVariants < 0 {
			logger.Warn("Invalid maximum variant count, using default",
				zap.Int("max-variants", c.MaxVariants), zap.Int("default", DefaultMaxVariants))
		}

		c.MaxVariants = DefaultMaxVariants
	}
}

// compactUnsorted removes later duplicates while keeping the order.
func compactUnsorted(list []string) []string {
	seen := make(map[string]struct{}, len(list))

	return slices.DeleteFunc(list, func(s string) bool {
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}

		return false
	})
}
