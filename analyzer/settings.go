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
	"bytes"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the file and plugin representation of the analyzer configuration.
// Unset fields keep their defaults.
type Settings struct {
	// Exhaustive enables exhaustiveness checks.
	Exhaustive *bool `json:"exhaustive,omitzero" yaml:"exhaustive,omitempty"`
	// UnsafeExtraction enables unsafe extraction checks.
	UnsafeExtraction *bool `json:"unsafe-extraction,omitzero" yaml:"unsafe-extraction,omitempty"`
	// MustUse enables reporting of discarded Outcome values.
	MustUse *bool `json:"must-use,omitzero" yaml:"must-use,omitempty"`
	// ImportGating enables the import allow-list.
	ImportGating *bool `json:"import-gating,omitzero" yaml:"import-gating,omitempty"`
	// UnsafeCallSites reports extractions on values of unknown variant.
	UnsafeCallSites *bool `json:"unsafe-call-sites,omitzero" yaml:"unsafe-call-sites,omitempty"`
	// Severity overrides the severity per rule name.
	Severity map[string]string `json:"severity,omitzero" yaml:"severity,omitempty"`
	// LibraryPaths are the import paths of the Outcome library.
	LibraryPaths []string `json:"library-paths,omitzero" yaml:"library-paths,omitempty"`
	// Discriminants are the method names carrying the tag of a union member.
	Discriminants []string `json:"discriminants,omitzero" yaml:"discriminants,omitempty"`
	// AllowImports are glob patterns of files permitted to import the library.
	AllowImports []string `json:"allow-imports,omitzero" yaml:"allow-imports,omitempty"`
	// MaxVariants is the largest tagged union analyzed.
	MaxVariants *int `json:"max-variants,omitzero" yaml:"max-variants,omitempty"`
}

// Options converts the settings into analyzer options.
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Exhaustive, WithExhaustive)
	opts = appendOption(opts, s.UnsafeExtraction, WithUnsafeExtraction)
	opts = appendOption(opts, s.MustUse, WithMustUse)
	opts = appendOption(opts, s.ImportGating, WithImportGating)
	opts = appendOption(opts, s.UnsafeCallSites, WithUnsafeCallSites)

	for _, rule := range sortedKeys(s.Severity) {
		opts = append(opts, severityName(rule, s.Severity[rule]))
	}

	if s.LibraryPaths != nil {
		opts = append(opts, WithLibraryPaths(s.LibraryPaths...))
	}

	if s.Discriminants != nil {
		opts = append(opts, WithDiscriminants(s.Discriminants...))
	}

	if s.AllowImports != nil {
		opts = append(opts, WithAllowImports(s.AllowImports...))
	}

	opts = appendOption(opts, s.MaxVariants, WithMaxVariants)

	return opts
}

func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// ErrSettings is returned when a settings file can't be read.
var ErrSettings = errors.New("invalid settings file")

// LoadSettings reads YAML settings from a file. Unknown keys are rejected.
func LoadSettings(name string) (Settings, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Settings{}, errors.Mark(errors.Wrapf(err, "reading %s", name), ErrSettings)
	}

	return ParseSettings(data)
}

// ParseSettings decodes YAML settings. Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, errors.Mark(errors.Wrap(err, "decoding settings"), ErrSettings)
	}

	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
