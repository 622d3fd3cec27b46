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
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/flow/block"
	"fillmore-labs.com/reuseguard/internal/flow/tracker"
)

// builder appends the statements of one function body to basic blocks.
//
// The append* methods take the block control reaches the statement in and
// return the block control leaves it from. A fresh, unlinked block is returned
// after statements that do not complete normally.
type builder struct {
	*Builder
	block.Factory

	path    *codepath.Path
	labels  map[string]*block.Label
	targets block.Targets
}

func (b *builder) appendStmtList(current *block.Block, list []ast.Stmt) *block.Block {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends stmt. labeled is the label of stmt, if any.
func (b *builder) appendStmt(current *block.Block, stmt ast.Stmt, labeled *block.Label) *block.Block {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt:
		b.assign(current, stmt)

	case *ast.BadStmt, *ast.EmptyStmt:

	case *ast.BlockStmt:
		return b.appendStmtList(current, stmt.List)

	case *ast.BranchStmt:
		return b.appendBranchStmt(current, stmt)

	case *ast.DeclStmt:
		b.decl(current, stmt)

	case *ast.DeferStmt:
		b.expr(current, stmt.Call)

	case *ast.ExprStmt:
		b.expr(current, stmt.X)

		if call, ok := ast.Unparen(stmt.X).(*ast.CallExpr); ok && tracker.CantReturn(b.info, call) {
			return b.New() // panic, os.Exit and friends
		}

	case *ast.ForStmt:
		return b.appendForStmt(current, stmt, labeled)

	case *ast.GoStmt:
		b.expr(current, stmt.Call)

	case *ast.IfStmt:
		return b.appendIfStmt(current, stmt)

	case *ast.IncDecStmt:
		b.update(current, stmt.X)

	case *ast.LabeledStmt:
		return b.appendLabeledStmt(current, stmt)

	case *ast.RangeStmt:
		return b.appendRangeStmt(current, stmt, labeled)

	case *ast.ReturnStmt:
		b.exprs(current, stmt.Results)

		return b.New()

	case *ast.SelectStmt:
		return b.appendSelectStmt(current, stmt, labeled)

	case *ast.SendStmt:
		b.expr(current, stmt.Chan)
		b.expr(current, stmt.Value)

	case *ast.SwitchStmt:
		current = b.appendInit(current, stmt.Init)
		if stmt.Tag != nil {
			b.expr(current, stmt.Tag)
		}

		return b.appendSwitchBody(current, stmt.Body.List, labeled, false)

	case *ast.TypeSwitchStmt:
		current = b.appendInit(current, stmt.Init)

		// The symbol in "switch y := x.(type)" is implicitly declared per clause and not tracked.
		switch guard := stmt.Assign.(type) {
		case *ast.AssignStmt:
			b.exprs(current, guard.Rhs)

		case *ast.ExprStmt:
			b.expr(current, guard.X)
		}

		return b.appendSwitchBody(current, stmt.Body.List, labeled, true)

	default: // *ast.CaseClause and *ast.CommClause only occur inside their statements
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
		// keep-sorted end
	}

	return current
}

func (b *builder) appendInit(current *block.Block, init ast.Stmt) *block.Block {
	if init == nil {
		return current
	}

	return b.appendStmt(current, init, nil)
}

func (b *builder) appendLabeledStmt(current *block.Block, stmt *ast.LabeledStmt) *block.Block {
	l := b.label(stmt.Label)
	current.Link(l.Stmt)

	return b.appendStmt(l.Stmt, stmt.Stmt, l)
}

// appendBranchStmt links current to the destination of break, continue, goto or fallthrough.
func (b *builder) appendBranchStmt(current *block.Block, stmt *ast.BranchStmt) *block.Block {
	j := block.JumpOf(stmt.Tok)

	var target *block.Block
	if stmt.Label != nil {
		target = b.label(stmt.Label).Target(j)
	} else {
		target = b.targets.Target(j)
	}

	if target != nil {
		current.Link(target)
	}

	return b.New()
}

// label returns the [block.Label] named by id. A forward goto creates it.
func (b *builder) label(id *ast.Ident) *block.Label {
	l, ok := b.labels[id.Name]
	if !ok {
		l = block.NewLabel(b.New())
		b.labels[id.Name] = l
	}

	return l
}

func (b *builder) appendIfStmt(current *block.Block, stmt *ast.IfStmt) *block.Block {
	current = b.appendInit(current, stmt.Init)
	b.expr(current, stmt.Cond)

	after := b.New() // after if
	then := b.New()  // if body

	b.appendStmtList(then, stmt.Body.List).Link(after)

	els := after
	if stmt.Else != nil {
		els = b.New() // else branch
		b.appendStmt(els, stmt.Else, nil).Link(after)
	}

	current.LinkBranch(then, els)

	return after
}

// appendSwitchBody builds the clauses of an expression or type switch.
//
// Case expressions are tested in source order, a chain ending in the default
// clause, or after the switch when there is none. Type switch cases hold
// types and no references.
//
// See https://go.dev/ref/spec#Switch_statements
func (b *builder) appendSwitchBody(current *block.Block, clauses []ast.Stmt, labeled *block.Label, typeSwitch bool) *block.Block {
	if len(clauses) == 0 {
		return current
	}

	after := b.New() // after switch

	bodies := make([]*block.Block, len(clauses))
	for i := range clauses {
		bodies[i] = b.New() // case body
	}

	test, match, fallback := current, (*block.Block)(nil), after
	for i, c := range clauses {
		clause := c.(*ast.CaseClause)
		if clause.List == nil {
			fallback = bodies[i]
			continue
		}

		next := b.New() // case expressions
		if !typeSwitch {
			b.exprs(next, clause.List)
		}

		test.LinkClause(match, next)
		test, match = next, bodies[i]
	}

	test.LinkClause(match, fallback)

	b.breakable(after, labeled, func() {
		for i, c := range clauses {
			var next *block.Block
			if !typeSwitch && i+1 < len(clauses) {
				next = bodies[i+1]
			}

			saved := b.targets.Enter(block.Fallthrough, next, nil)
			b.appendStmtList(bodies[i], c.(*ast.CaseClause).Body).Link(after)
			b.targets.Leave(block.Fallthrough, saved)
		}
	})

	return after
}

// appendSelectStmt builds a select statement. All channel operands are
// evaluated on entry, then one ready clause runs.
//
// See https://go.dev/ref/spec#Select_statements
func (b *builder) appendSelectStmt(current *block.Block, stmt *ast.SelectStmt, labeled *block.Label) *block.Block {
	after := b.New() // after select

	for _, c := range stmt.Body.List {
		switch comm := c.(*ast.CommClause).Comm.(type) {
		case nil: // default

		case *ast.SendStmt:
			b.expr(current, comm.Chan)
			b.expr(current, comm.Value)

		case *ast.AssignStmt:
			b.exprs(current, comm.Rhs)

		case *ast.ExprStmt:
			b.expr(current, comm.X)

		default:
			panic(fmt.Sprintf("unexpected communication clause: %T", comm))
		}
	}

	dispatch := current

	var prev *block.Block

	b.breakable(after, labeled, func() {
		for _, c := range stmt.Body.List {
			clause := c.(*ast.CommClause)

			next := b.New() // dispatch
			dispatch.LinkClause(prev, next)

			body := b.New() // clause body
			dispatch, prev = next, body

			if assign, ok := clause.Comm.(*ast.AssignStmt); ok && assign.Tok == token.ASSIGN {
				b.assignReceived(body, assign.Lhs)
			}

			b.appendStmtList(body, clause.Body).Link(after)
		}
	})

	if prev != nil {
		dispatch.Link(prev)
	}

	return after
}

func (b *builder) appendForStmt(current *block.Block, stmt *ast.ForStmt, labeled *block.Label) *block.Block {
	current = b.appendInit(current, stmt.Init)

	body := b.New()  // for body
	after := b.New() // after for

	cond := body
	if stmt.Cond != nil {
		cond = b.New() // for condition
		b.expr(cond, stmt.Cond)
		cond.LinkBranch(body, after)
	}

	current.Link(cond)

	next := cond
	if stmt.Post != nil {
		// The post statement is simple, so it stays in one block.
		next = b.appendStmt(b.New(), stmt.Post, nil)
		next.Link(cond)
	}

	b.appendLoopBody(body, stmt.Body.List, next, after, labeled)

	return after
}

// appendRangeStmt builds a range loop.
//
// The loop head decides between another iteration and leaving the loop,
// so a range over an empty collection skips the body.
func (b *builder) appendRangeStmt(current *block.Block, stmt *ast.RangeStmt, labeled *block.Label) *block.Block {
	b.expr(current, stmt.X)

	head := b.New()  // range head
	body := b.New()  // range body
	after := b.New() // after range

	current.Link(head)
	head.LinkBranch(body, after)

	if stmt.Tok == token.ASSIGN {
		// Iteration values are assigned at the start of each iteration
		b.assignReceived(body, []ast.Expr{stmt.Key, stmt.Value})
	}

	b.appendLoopBody(body, stmt.Body.List, head, after, labeled)

	return after
}

// appendLoopBody appends a loop body starting at body. Its end and continue
// go to next, break goes to after.
func (b *builder) appendLoopBody(body *block.Block, list []ast.Stmt, next, after *block.Block, labeled *block.Label) {
	b.breakable(after, labeled, func() {
		saved := b.targets.Enter(block.Continue, next, labeled)
		b.appendStmtList(body, list).Link(next)
		b.targets.Leave(block.Continue, saved)
	})
}

// breakable runs build with after as the destination of break.
func (b *builder) breakable(after *block.Block, labeled *block.Label, build func()) {
	saved := b.targets.Enter(block.Break, after, labeled)
	build()
	b.targets.Leave(block.Break, saved)
}
