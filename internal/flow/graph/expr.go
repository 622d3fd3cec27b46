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
	"go/token"
	"go/types"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/flow/block"
)

// exprs records the references of a list of expressions in evaluation order.
func (b *builder) exprs(current *block.Block, list []ast.Expr) {
	for _, e := range list {
		b.expr(current, e)
	}
}

// expr records the references of an expression in evaluation order.
// Function literals become nested code paths.
func (b *builder) expr(current *block.Block, e ast.Expr) {
	if e == nil {
		return
	}

	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			b.reference(current, n, b.info.Uses[n], codepath.Read)

		case *ast.FuncLit:
			b.funcLit(n)
			return false

		case *ast.SelectorExpr:
			b.methodReceiver(n)
			b.expr(current, n.X)

			return false // n.Sel is a field or method

		case *ast.UnaryExpr:
			if n.Op == token.AND {
				b.escape(n.X)
			}

		case *ast.SliceExpr:
			if isArray(b.info.TypeOf(n.X)) {
				b.escape(n.X)
			}
		}

		return true
	})
}

// funcLit builds the nested code path of a function literal.
func (b *builder) funcLit(lit *ast.FuncLit) {
	child := b.buildPath(lit.Body)
	b.path.Children = append(b.path.Children, child)
}

// assign records an assignment or short variable declaration.
//
// Operands of index expressions and pointer indirections on the left are
// evaluated first, then the right hand side, then the variables are assigned.
// See https://go.dev/ref/spec#Assignment_statements
func (b *builder) assign(current *block.Block, stmt *ast.AssignStmt) {
	for _, lhs := range stmt.Lhs {
		if _, ok := ast.Unparen(lhs).(*ast.Ident); !ok {
			b.expr(current, lhs)
		}
	}

	b.exprs(current, stmt.Rhs)

	switch stmt.Tok {
	case token.DEFINE:
		for _, lhs := range stmt.Lhs {
			id, ok := lhs.(*ast.Ident)
			if !ok {
				continue
			}

			if obj, ok := b.info.Defs[id].(*types.Var); ok {
				b.declare(obj)
				b.reference(current, id, obj, codepath.Write)
			} else {
				b.reference(current, id, b.info.Uses[id], codepath.Write) // redeclared
			}
		}

	case token.ASSIGN:
		for _, lhs := range stmt.Lhs {
			if id, ok := ast.Unparen(lhs).(*ast.Ident); ok {
				b.reference(current, id, b.info.Uses[id], codepath.Write)
			}
		}

	default: // op=
		if id, ok := ast.Unparen(stmt.Lhs[0]).(*ast.Ident); ok {
			b.reference(current, id, b.info.Uses[id], codepath.ReadWrite)
		}
	}
}

// assignReceived records values assigned by a range or receive clause.
func (b *builder) assignReceived(current *block.Block, lhs []ast.Expr) {
	for _, e := range lhs {
		if e == nil {
			continue
		}

		if id, ok := ast.Unparen(e).(*ast.Ident); ok {
			b.reference(current, id, b.info.Uses[id], codepath.Write)
		} else {
			b.expr(current, e)
		}
	}
}

// update records an increment or decrement.
func (b *builder) update(current *block.Block, x ast.Expr) {
	if id, ok := ast.Unparen(x).(*ast.Ident); ok {
		b.reference(current, id, b.info.Uses[id], codepath.ReadWrite)
		return
	}

	b.expr(current, x)
}

// decl records a var declaration. Names without a value are declared but not written.
func (b *builder) decl(current *block.Block, stmt *ast.DeclStmt) {
	d, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || d.Tok != token.VAR {
		return // const and type declarations
	}

	for _, spec := range d.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		b.exprs(current, vspec.Values)

		for _, id := range vspec.Names {
			obj, ok := b.info.Defs[id].(*types.Var)
			if !ok {
				continue
			}

			b.declare(obj)

			if len(vspec.Values) > 0 {
				b.reference(current, id, obj, codepath.Write)
			}
		}
	}
}

var errorType = types.Universe.Lookup("error").Type()

// declare registers a tracked variable in the current code path.
func (b *builder) declare(obj *types.Var) {
	if obj.Name() == "_" {
		return
	}

	if !b.errors && types.Identical(obj.Type(), errorType) {
		return
	}

	v := &codepath.Variable{Name: obj.Name(), Pos: obj.Pos(), Scope: b.path.Scope}
	b.vars[obj] = v
	b.path.Variables = append(b.path.Variables, v)
}

// reference records an occurrence of a tracked variable.
func (b *builder) reference(current *block.Block, id *ast.Ident, obj types.Object, access codepath.Access) {
	o, ok := obj.(*types.Var)
	if !ok {
		return
	}

	v, ok := b.vars[o]
	if !ok {
		return
	}

	ident := &codepath.Ident{Name: id.Name, Pos: id.Pos(), End: id.End()}
	current.Add(ident)
	v.AddReference(ident, access, b.path.Scope)
}
