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

package run

import (
	"sync"

	"go.uber.org/zap"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/identity"
	"fillmore-labs.com/outcomeguard/internal/logging"
	"fillmore-labs.com/outcomeguard/internal/typecache"
)

// Options represent the configuration of one outcomeguard analyzer instance.
type Options struct {
	// Config holds the rule selection and tuning values.
	Config *config.Config

	// Logger receives operational messages, never findings.
	Logger *zap.Logger

	// Caches holds one identity cache per type-checking generation.
	Caches *typecache.Registry[identity.Info]

	once     sync.Once
	warnings []warning
}

type warning struct {
	msg    string
	fields []zap.Field
}

// Warn records a configuration problem, logged with the final logger before the first run.
func (r *Options) Warn(msg string, fields ...zap.Field) {
	r.warnings = append(r.warnings, warning{msg, fields})
}

// prepare logs deferred warnings and normalizes a private copy of the configuration.
// Flags are parsed before the first run, so later changes to the original are not observed.
func (r *Options) prepare() {
	if r.Logger == nil {
		r.Logger = logging.Nop()
	}

	for _, w := range r.warnings {
		r.Logger.Warn(w.msg, w.fields...)
	}

	r.warnings = nil

	cfg := r.Config.Clone()
	cfg.Normalize(r.Logger)
	r.Config = cfg
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Config: config.Default(),
		Logger: logging.Default(),
		Caches: typecache.NewRegistry[identity.Info](),
	}
}
