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

// Package tracker identifies calls that end the current code path.
package tracker

import (
	"go/ast"
	"go/types"
)

// noReturn lists functions and methods that never return, grouped by package and receiver.
var noReturn = [...]struct {
	path, receiver string
	names          []string
}{
	{"log", "", []string{"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"}},
	{"log", "Logger", []string{"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"}},
	{"os", "", []string{"Exit"}},
	{"syscall", "", []string{"Exit"}},
	{"runtime", "", []string{"Goexit"}},
	{"testing", "common", []string{"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"}},
	{"testing", "TB", []string{"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"}},
	{"github.com/sirupsen/logrus", "Entry", []string{"Panic", "Panicf", "Panicln"}},
	{"github.com/sirupsen/logrus", "Logger", []string{"Exit", "Panic", "Panicf", "Panicln"}},
	{"go.uber.org/zap", "Logger", []string{"Fatal", "Panic"}},
	{"go.uber.org/zap", "SugaredLogger", []string{"Fatal", "Fatalf", "Fatalln", "Fatalw", "Panic", "Panicf", "Panicln", "Panicw"}},
	{"k8s.io/klog", "", []string{"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
	{"k8s.io/klog/v2", "", []string{"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
}

var knownFuncs = func() map[FuncName]struct{} {
	known := make(map[FuncName]struct{})
	for _, group := range noReturn {
		for _, name := range group.names {
			known[FuncName{Path: group.path, Receiver: group.receiver, Name: name}] = struct{}{}
		}
	}

	return known
}()

// CantReturn reports whether a call never returns to its caller.
// It iteratively unwraps the called expression to find the underlying function.
func CantReturn(info *types.Info, n *ast.CallExpr) bool {
	ex := n.Fun

	for {
		switch e := ex.(type) {
		case *ast.Ident:
			return cantReturnFunc(info, e)

		case *ast.SelectorExpr:
			return cantReturnFunc(info, e.Sel)

		case *ast.IndexExpr: // myFunc[T]
			ex = e.X

		case *ast.IndexListExpr: // myFunc[T, U]
			ex = e.X

		case *ast.ParenExpr: // (myFunc)
			ex = e.X

		default: // Pointer dereference or another function reference.
			return false
		}
	}
}

func cantReturnFunc(info *types.Info, id *ast.Ident) bool {
	switch use := info.Uses[id].(type) {
	case *types.Func:
		_, ok := knownFuncs[FuncNameOf(use)]
		return ok

	case *types.Builtin:
		return use == builtinPanic

	default:
		return false
	}
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
