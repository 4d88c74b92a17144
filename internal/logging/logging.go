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

// Package logging builds the structured loggers used by the analyzer.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldRule    = "rule"
	FieldFile    = "file"
	FieldPackage = "package"
	FieldPattern = "pattern"
	FieldStack   = "stack"
)

// New returns a console logger writing entries at or above level to stderr.
func New(level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core).Named("outcomeguard")
}

// Default returns the logger used when none is configured: warnings and errors on stderr.
func Default() *zap.Logger {
	return New(zapcore.WarnLevel)
}

// Nop returns a logger discarding everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
