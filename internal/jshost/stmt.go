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

package jshost

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/reuseguard/internal/flow/block"
)

// appendStmtList appends a list of statements to the current block.
func (b *builder) appendStmtList(current *block.Block, list []*sitter.Node) *block.Block {
	for _, s := range list {
		current = b.appendStmt(current, s, nil)
	}

	return current
}

// appendStmt appends a single statement to the current block.
// labeled indicates if the statement has a label target (for break/continue).
func (b *builder) appendStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	switch stmt.Type() {
	// keep-sorted start newline_separated=yes
	case "break_statement":
		return b.appendBranchStmt(current, stmt, block.Break)

	case "class_declaration":
		return b.class(current, stmt)

	case "continue_statement":
		return b.appendBranchStmt(current, stmt, block.Continue)

	case "debugger_statement", "empty_statement", "import_statement":
		return current

	case "do_statement":
		return b.appendDoStmt(current, stmt, labeled)

	case "export_statement":
		return b.appendExportStmt(current, stmt)

	case "expression_statement":
		for _, e := range children(stmt) {
			current = b.expr(current, e)
		}

		return current

	case "for_in_statement":
		return b.appendForInStmt(current, stmt, labeled)

	case "for_statement":
		return b.appendForStmt(current, stmt, labeled)

	case "function_declaration", "generator_function_declaration":
		b.function(stmt)
		return current

	case "if_statement":
		return b.appendIfStmt(current, stmt)

	case "labeled_statement":
		return b.appendLabeledStmt(current, stmt)

	case "lexical_declaration", "variable_declaration":
		return b.appendDecl(current, stmt)

	case "return_statement":
		for _, e := range children(stmt) {
			current = b.expr(current, e)
		}

		b.jump(current, nil)

		return b.New() // unreachable after return

	case "statement_block":
		return b.appendBlock(current, stmt)

	case "switch_statement":
		return b.appendSwitchStmt(current, stmt, labeled)

	case "throw_statement":
		for _, e := range children(stmt) {
			current = b.expr(current, e)
		}

		return b.New() // unreachable after throw

	case "try_statement":
		return b.appendTryStmt(current, stmt)

	case "while_statement":
		return b.appendWhileStmt(current, stmt, labeled)

	case "with_statement":
		return b.appendWithStmt(current, stmt)

	default:
		return b.expr(current, stmt)
		// keep-sorted end
	}
}

// appendBlock handles a block statement with its own lexical scope.
func (b *builder) appendBlock(current *block.Block, stmt *sitter.Node) *block.Block {
	list := children(stmt)

	outer := b.scope
	b.scope = newScope(outer, b.path)
	b.declareLexical(b.scope, list)

	current = b.appendStmtList(current, list)

	b.scope = outer

	return current
}

// appendDecl handles var, let and const declarations. Declarations without
// initializer do not write.
func (b *builder) appendDecl(current *block.Block, decl *sitter.Node) *block.Block {
	for _, d := range children(decl) {
		if d.Type() != "variable_declarator" {
			continue
		}

		value := d.ChildByFieldName("value")
		if value == nil {
			continue
		}

		current = b.expr(current, value)
		current = b.target(current, d.ChildByFieldName("name"))
	}

	return current
}

// appendBranchStmt handles break and continue.
func (b *builder) appendBranchStmt(current *block.Block, stmt *sitter.Node, j block.Jump) *block.Block {
	var target *block.Block
	if label := stmt.ChildByFieldName("label"); label == nil {
		target = b.targets.Target(j)
	} else if labeled, ok := b.labels[b.text(label)]; ok {
		target = labeled.Target(j)
	}

	if target != nil {
		b.jump(current, target)
	}

	return b.New() // unreachable after break or continue
}

// appendLabeledStmt handles labeled statements. Labeled statements other than
// loops and switches can be left with break.
func (b *builder) appendLabeledStmt(current *block.Block, stmt *sitter.Node) *block.Block {
	body := stmt.ChildByFieldName("body")
	if body == nil {
		return current
	}

	name := ""
	if label := stmt.ChildByFieldName("label"); label != nil {
		name = b.text(label)
	}

	labeled := block.NewLabel(b.New())
	current.Link(labeled.Stmt)

	old, shadowed := b.labels[name]
	b.labels[name] = labeled

	defer func() {
		if shadowed {
			b.labels[name] = old
		} else {
			delete(b.labels, name)
		}
	}()

	switch body.Type() {
	case "do_statement", "for_in_statement", "for_statement", "switch_statement", "while_statement":
		return b.appendStmt(labeled.Stmt, body, labeled)

	default:
		after := b.newTarget() // after labeled statement
		labeled.Set(block.Break, after)

		end := b.appendStmt(labeled.Stmt, body, nil)
		end.Link(after)

		return after
	}
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(current *block.Block, stmt *sitter.Node) *block.Block {
	current = b.expr(current, stmt.ChildByFieldName("condition"))

	after := b.New() // after if
	body := b.New()  // if body

	afterBody := b.appendStmt(body, stmt.ChildByFieldName("consequence"), nil)
	afterBody.Link(after)

	elseBranch := after
	if alt := stmt.ChildByFieldName("alternative"); alt != nil {
		elseBranch = b.New() // else branch

		afterElse := elseBranch
		for _, s := range children(alt) { // else clause
			afterElse = b.appendStmt(afterElse, s, nil)
		}

		afterElse.Link(after)
	}

	current.LinkBranch(body, elseBranch)

	return after
}

// appendWhileStmt handles while loops.
func (b *builder) appendWhileStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	cond := b.newTarget()                  // while condition
	body := b.New()                        // while body
	after, saved := b.newAfterBlock(labeled) // after while

	current.Link(cond)

	condEnd := b.expr(cond, stmt.ChildByFieldName("condition"))
	condEnd.LinkBranch(body, after)

	b.appendLoopBody(body, stmt.ChildByFieldName("body"), cond, cond, labeled)
	b.targets.Leave(block.Break, saved)

	return after
}

// appendDoStmt handles do-while loops.
func (b *builder) appendDoStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	body := b.New()                        // do body
	cond := b.newTarget()                  // while condition
	after, saved := b.newAfterBlock(labeled) // after do

	current.Link(body)

	b.appendLoopBody(body, stmt.ChildByFieldName("body"), cond, cond, labeled)

	condEnd := b.expr(cond, stmt.ChildByFieldName("condition"))
	condEnd.LinkBranch(body, after)

	b.targets.Leave(block.Break, saved)

	return after
}

// appendForStmt handles C-style for loops.
func (b *builder) appendForStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	outer := b.scope
	b.scope = newScope(outer, b.path)

	defer func() { b.scope = outer }()

	if init := stmt.ChildByFieldName("initializer"); init != nil {
		b.declareStatement(b.scope, init)
		current = b.appendStmt(current, init, nil)
	}

	cond := b.New()                        // for condition
	body := b.New()                        // for body
	after, saved := b.newAfterBlock(labeled) // after for

	current.Link(cond)

	if test := loopCondition(stmt.ChildByFieldName("condition")); test != nil {
		condEnd := b.expr(cond, test)
		condEnd.LinkBranch(body, after)
	} else {
		cond.Link(body)
	}

	post := b.newTarget() // for increment
	if inc := stmt.ChildByFieldName("increment"); inc != nil {
		postEnd := b.expr(post, inc)
		postEnd.Link(cond)
	} else {
		post.Link(cond)
	}

	b.appendLoopBody(body, stmt.ChildByFieldName("body"), post, post, labeled)
	b.targets.Leave(block.Break, saved)

	return after
}

// loopCondition returns the test expression of a for statement, or nil.
func loopCondition(n *sitter.Node) *sitter.Node {
	if n == nil || !n.IsNamed() {
		return nil
	}

	switch n.Type() {
	case "empty_statement":
		return nil

	case "expression_statement":
		if list := children(n); len(list) > 0 {
			return list[0]
		}

		return nil

	default:
		return n
	}
}

// appendForInStmt handles for-in and for-of loops.
//
// The loop head decides between another iteration and leaving the loop,
// so iterating over an empty collection skips the body.
func (b *builder) appendForInStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	current = b.expr(current, stmt.ChildByFieldName("right"))

	outer := b.scope
	b.scope = newScope(outer, b.path)

	defer func() { b.scope = outer }()

	left := stmt.ChildByFieldName("left")
	if kind := declarationKind(stmt); kind == "let" || kind == "const" {
		b.declareNames(b.scope, left)
	}

	head := b.newTarget()                  // loop head
	body := b.New()                        // loop body
	after, saved := b.newAfterBlock(labeled) // after loop

	current.Link(head)
	head.LinkBranch(body, after)

	// Iteration values are assigned at the start of each iteration
	body = b.target(body, left)

	b.appendLoopBody(body, stmt.ChildByFieldName("body"), head, head, labeled)
	b.targets.Leave(block.Break, saved)

	return after
}

// appendLoopBody appends the body of a loop and links its end to next.
func (b *builder) appendLoopBody(body *block.Block, stmt *sitter.Node, next, cont *block.Block, labeled *block.Label) {
	saved := b.targets.Enter(block.Continue, cont, labeled)

	if stmt != nil {
		body = b.appendStmt(body, stmt, nil)
	}

	body.Link(next)

	b.targets.Leave(block.Continue, saved)
}

// appendSwitchStmt handles switch statements.
//
// Case tests are evaluated in source order, the default body is entered when
// no test matches and bodies fall through in source order.
func (b *builder) appendSwitchStmt(current *block.Block, stmt *sitter.Node, labeled *block.Label) *block.Block {
	current = b.expr(current, stmt.ChildByFieldName("value"))

	var clauses []*sitter.Node
	if body := stmt.ChildByFieldName("body"); body != nil {
		clauses = children(body)
	}

	outer := b.scope
	b.scope = newScope(outer, b.path)

	defer func() { b.scope = outer }()

	for _, clause := range clauses {
		b.declareLexical(b.scope, clauseBody(clause))
	}

	after, saved := b.newAfterBlock(labeled) // after switch

	bodies := make([]*block.Block, len(clauses))
	for i := range clauses {
		bodies[i] = b.New() // case body
	}

	defaultTarget := after
	prevTest := current

	var prevBody *block.Block

	for i, clause := range clauses {
		if clause.Type() == "switch_default" {
			defaultTarget = bodies[i]
			continue
		}

		test := b.New() // case test
		prevTest.LinkClause(prevBody, test)

		prevTest = b.expr(test, clause.ChildByFieldName("value"))
		prevBody = bodies[i]
	}

	prevTest.LinkClause(prevBody, defaultTarget)

	for i, clause := range clauses {
		next := after
		if i < len(clauses)-1 {
			next = bodies[i+1] // fall through
		}

		end := b.appendStmtList(bodies[i], clauseBody(clause))
		end.Link(next)
	}

	b.targets.Leave(block.Break, saved)

	return after
}

// clauseBody returns the statements of a switch case.
func clauseBody(clause *sitter.Node) []*sitter.Node {
	list := children(clause)
	if clause.Type() == "switch_case" && len(list) > 0 {
		return list[1:] // skip the case value
	}

	return list
}

// appendWithStmt handles with statements. Variables referenced in the body may
// be resolved dynamically.
func (b *builder) appendWithStmt(current *block.Block, stmt *sitter.Node) *block.Block {
	current = b.expr(current, stmt.ChildByFieldName("object"))

	b.with++
	defer func() { b.with-- }()

	return b.appendStmt(current, stmt.ChildByFieldName("body"), nil)
}

// appendExportStmt handles export statements. Exported variables can be
// observed by other modules.
func (b *builder) appendExportStmt(current *block.Block, stmt *sitter.Node) *block.Block {
	if decl := stmt.ChildByFieldName("declaration"); decl != nil {
		current = b.appendStmt(current, decl, nil)

		if decl.Type() == "lexical_declaration" || decl.Type() == "variable_declaration" {
			for _, d := range children(decl) {
				if d.Type() == "variable_declarator" {
					bindingNames(d.ChildByFieldName("name"), b.escape)
				}
			}
		}

		return current
	}

	if value := stmt.ChildByFieldName("value"); value != nil {
		return b.expr(current, value)
	}

	if stmt.ChildByFieldName("source") != nil {
		return current // re-export
	}

	for _, c := range children(stmt) {
		if c.Type() != "export_clause" {
			continue
		}

		for _, spec := range children(c) {
			if name := spec.ChildByFieldName("name"); name != nil {
				b.escape(name)
			}
		}
	}

	return current
}

// newTarget returns a new block that branch statements can jump to.
func (b *builder) newTarget() *block.Block {
	target := b.New()
	b.depth[target] = len(b.finallies)

	return target
}

// newAfterBlock returns the block after a breakable statement and makes it
// the destination of break. The saved destination goes to [block.Targets.Leave].
func (b *builder) newAfterBlock(labeled *block.Label) (after, saved *block.Block) {
	after = b.newTarget() // after

	return after, b.targets.Enter(block.Break, after, labeled)
}

// declarationKind returns "var", "let" or "const" for a declaring for-in loop head.
func declarationKind(stmt *sitter.Node) string {
	if kind := stmt.ChildByFieldName("kind"); kind != nil {
		return kind.Type()
	}

	for i := range int(stmt.ChildCount()) {
		switch c := stmt.Child(i); c.Type() {
		case "var", "let", "const":
			return c.Type()

		case "in", "of":
			return ""
		}
	}

	return ""
}
