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

package graph

import (
	"go/ast"
	"go/types"
)

// escape marks the variable whose storage contains x as escaping.
func (b *builder) escape(x ast.Expr) {
	for {
		switch e := x.(type) {
		case *ast.ParenExpr:
			x = e.X

		case *ast.SelectorExpr:
			sel, ok := b.info.Selections[e]
			if !ok || sel.Kind() != types.FieldVal || sel.Indirect() {
				return // qualified identifier or field behind a pointer
			}

			x = e.X

		case *ast.IndexExpr:
			if !isArray(b.info.TypeOf(e.X)) {
				return // slice and map elements live elsewhere
			}

			x = e.X

		case *ast.Ident:
			if obj, ok := b.info.Uses[e].(*types.Var); ok {
				if v, ok := b.vars[obj]; ok {
					v.Escapes = true
				}
			}

			return

		default:
			return
		}
	}
}

// methodReceiver handles the implicit address taken by calling a pointer method on an addressable value.
func (b *builder) methodReceiver(e *ast.SelectorExpr) {
	sel, ok := b.info.Selections[e]
	if !ok || sel.Kind() != types.MethodVal || sel.Indirect() {
		return
	}

	fun, ok := sel.Obj().(*types.Func)
	if !ok {
		return
	}

	recv := fun.Signature().Recv()
	if recv == nil || !isPointer(recv.Type()) || isPointer(b.info.TypeOf(e.X)) {
		return
	}

	b.escape(e.X)
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}
