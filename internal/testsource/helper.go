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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the outcomeguard analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments that use a minimal
// in-memory Outcome library.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// LibraryPath is the import path of the in-memory Outcome library.
const LibraryPath = "example.com/outcome"

// LibrarySource is the source of the in-memory Outcome library.
const LibrarySource = `package outcome

import "context"

type brand struct{}

type okTag struct{}

type errTag struct{}

type Outcome[T, E any] interface {
	IsOk() bool
	IsErr() bool
	Unwrap() T
	Expect(msg string) T
	UnwrapErr() E
	UnwrapOr(def T) T
	Value() (T, bool)
	Failure() (E, bool)
	sealed(brand)
}

type Success[T, E any] struct {
	tag     okTag
	brand   brand
	Payload T
}

type Failure[T, E any] struct {
	tag   errTag
	brand brand
	Err   E
}

func (Success[T, E]) sealed(brand) {}

func (s Success[T, E]) IsOk() bool          { return true }
func (s Success[T, E]) IsErr() bool         { return false }
func (s Success[T, E]) Unwrap() T           { return s.Payload }
func (s Success[T, E]) Expect(string) T     { return s.Payload }
func (s Success[T, E]) UnwrapErr() E        { panic("success") }
func (s Success[T, E]) UnwrapOr(T) T        { return s.Payload }
func (s Success[T, E]) Value() (T, bool)    { return s.Payload, true }
func (s Success[T, E]) Failure() (e E, _ bool) { return e, false }

func (Failure[T, E]) sealed(brand) {}

func (f Failure[T, E]) IsOk() bool              { return false }
func (f Failure[T, E]) IsErr() bool             { return true }
func (f Failure[T, E]) Unwrap() T               { panic(f.Err) }
func (f Failure[T, E]) Expect(msg string) T     { panic(msg) }
func (f Failure[T, E]) UnwrapErr() E            { return f.Err }
func (f Failure[T, E]) UnwrapOr(def T) T        { return def }
func (f Failure[T, E]) Value() (t T, _ bool)    { return t, false }
func (f Failure[T, E]) Failure() (E, bool)      { return f.Err, true }

type Async[T, E any] struct{ ch <-chan Outcome[T, E] }

func (a Async[T, E]) Await(ctx context.Context) Outcome[T, E] { return <-a.ch }

func Ok[T, E any](v T) Outcome[T, E] { return Success[T, E]{Payload: v} }

func Fail[T, E any](e E) Outcome[T, E] { return Failure[T, E]{Err: e} }

func Must[T, E any](o Outcome[T, E]) T { return o.Unwrap() }
`

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test` importing the in-memory Outcome library as `outcome` and
// the standard library packages listed in imports. This
// allows testing statement-level code fragments without manually constructing the
// surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string, imports ...string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()
	srcFile := wrapSource(src, imports)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// The in-memory Outcome library is importable as [LibraryPath].
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	lib := checkLibrary(tb, fset)

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: libraryImporter{lib: lib}}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func checkLibrary(tb testing.TB, fset *token.FileSet) *types.Package {
	tb.Helper()

	f, err := parser.ParseFile(fset, "outcome.go", LibrarySource, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse library: %v", err)
	}

	conf := types.Config{Importer: importer.Default()}

	lib, err := conf.Check(LibraryPath, fset, []*ast.File{f}, nil)
	if err != nil {
		tb.Fatalf("failed to type Check library: %v", err)
	}

	return lib
}

type libraryImporter struct{ lib *types.Package }

func (i libraryImporter) Import(path string) (*types.Package, error) {
	if path == LibraryPath {
		return i.lib, nil
	}

	return importer.Default().Import(path)
}

func wrapSource(src string, imports []string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nimport \"" + LibraryPath + "\"\n"
		prelude    = "\nvar _ = outcome.Ok[int, error]\n\nfunc _() {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(prelude) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error

	for _, imp := range imports {
		srcFile.WriteString("import \"" + imp + "\"\n") // ignore error
	}

	srcFile.WriteString(prelude) // ignore error
	srcFile.WriteString(src)     // ignore error
	srcFile.WriteString(suffix)  // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
