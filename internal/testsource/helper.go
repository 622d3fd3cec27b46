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


// Package testsource provides utilities for building test inputs.
//
// It type-checks Go statement fragments and builds code paths by hand,
// so tests can exercise single stages without a full analysis pass.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

// HeaderLines is the number of lines [Function] places before a fragment.
const HeaderLines = 3

// Fragment is a type-checked statement fragment.
type Fragment struct {
	Fset *token.FileSet
	File *ast.File
	Func *ast.FuncDecl
	Info *types.Info
}

// Function wraps the statements in src into `func _() { ... }` of package
// test, then parses and type-checks the result. Line n of src is line
// n+[HeaderLines] of the generated file.
func Function(tb testing.TB, src string) Fragment {
	tb.Helper()

	var text strings.Builder
	text.Grow(len(src) + 32)
	text.WriteString("package test\n\nfunc _() {\n")
	text.WriteString(src)
	text.WriteString("\n}\n")

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", text.String(), parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse fragment %q: %v", src, err)
	}

	var fn *ast.FuncDecl
	for _, decl := range f.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			fn = d
			break
		}
	}

	if fn == nil {
		tb.Fatal("Can't find function")
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}
	if _, err := conf.Check("test", fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Failed to type check fragment: %v", err)
	}

	return Fragment{Fset: fset, File: f, Func: fn, Info: info}
}
