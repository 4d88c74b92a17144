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

package engine

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/outcomeguard/internal/config"
	"fillmore-labs.com/outcomeguard/internal/identity"
	"fillmore-labs.com/outcomeguard/internal/narrowing"
)

// ErrInvalidFileContext is returned when the host integration hands over an incomplete file.
var ErrInvalidFileContext = errors.New("invalid file context")

// FileContext is everything a rule may consult while analyzing one file.
type FileContext struct {
	Fset      *token.FileSet
	File      *ast.File
	Cursor    inspector.Cursor // Cursor positioned at File
	Pkg       *types.Package
	TypesInfo *types.Info

	Resolver *identity.Resolver
	Oracle   narrowing.Oracle
	Config   *config.Config

	// ImportObjectFact retrieves facts about objects of the current or imported packages.
	ImportObjectFact func(obj types.Object, fact analysis.Fact) bool
}

// Filename returns the slash-separated name of the file.
func (fc *FileContext) Filename() string {
	tf := fc.Fset.File(fc.File.FileStart)
	if tf == nil {
		return ""
	}

	return filepath.ToSlash(tf.Name())
}

// TypeOf returns the type of expr, or nil.
func (fc *FileContext) TypeOf(expr ast.Expr) types.Type {
	return fc.TypesInfo.TypeOf(expr)
}

// Resolve returns the Outcome identity of the type of expr.
func (fc *FileContext) Resolve(expr ast.Expr) identity.Info {
	return fc.Resolver.Resolve(fc.TypeOf(expr))
}

// Library returns the Outcome library description.
func (fc *FileContext) Library() identity.Library {
	return fc.Resolver.Library()
}

func (fc *FileContext) validate() error {
	switch {
	case fc == nil:
		return errors.Wrap(ErrInvalidFileContext, "nil")

	case fc.File == nil:
		return errors.Wrap(ErrInvalidFileContext, "missing syntax tree")

	case fc.Fset == nil:
		return errors.Wrap(ErrInvalidFileContext, "missing file set")

	case fc.TypesInfo == nil || fc.Pkg == nil:
		return errors.Wrapf(ErrInvalidFileContext, "missing type information for %s", fc.File.Name.Name)

	case fc.Resolver == nil || fc.Config == nil:
		return errors.Wrap(ErrInvalidFileContext, "missing resolver or configuration")

	default:
		return nil
	}
}
