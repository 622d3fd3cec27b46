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

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/flow/block"
)

// expr appends the references of an expression in evaluation order.
func (b *builder) expr(current *block.Block, e *sitter.Node) *block.Block {
	if e == nil {
		return current
	}

	switch e.Type() {
	// keep-sorted start newline_separated=yes
	case "arrow_function", "function", "function_expression", "generator_function":
		b.function(e)
		return current

	case "assignment_expression":
		return b.assign(current, e)

	case "augmented_assignment_expression":
		return b.augmentedAssign(current, e)

	case "binary_expression":
		left, right := e.ChildByFieldName("left"), e.ChildByFieldName("right")

		if op := e.ChildByFieldName("operator"); op != nil {
			switch op.Type() {
			case "&&", "||", "??":
				current = b.expr(current, left)
				return b.conditional(current, right)
			}
		}

		current = b.expr(current, left)

		return b.expr(current, right)

	case "call_expression", "member_expression", "subscript_expression":
		return b.chain(current, e)

	case "class":
		return b.class(current, e)

	case "identifier", "shorthand_property_identifier":
		return b.reference(current, e, codepath.Read)

	case "method_definition":
		current = b.computedKey(current, e.ChildByFieldName("name"))
		b.function(e)

		return current

	case "property_identifier", "private_property_identifier", "statement_identifier":
		return current

	case "ternary_expression":
		current = b.expr(current, e.ChildByFieldName("condition"))

		after := b.New() // after conditional
		then := b.New()  // consequence
		els := b.New()   // alternative

		current.LinkBranch(then, els)
		b.expr(then, e.ChildByFieldName("consequence")).Link(after)
		b.expr(els, e.ChildByFieldName("alternative")).Link(after)

		return after

	case "update_expression":
		arg := unparen(e.ChildByFieldName("argument"))
		if arg != nil && arg.Type() == "identifier" {
			return b.reference(current, arg, codepath.ReadWrite)
		}

		return b.expr(current, arg)
		// keep-sorted end
	}

	for _, c := range children(e) {
		current = b.expr(current, c)
	}

	return current
}

// chain evaluates a member, subscript or call expression.
//
// When a ?. link of the chain finds a nullish value, everything after it up
// to the end of the chain is skipped, so a short-circuit jumps to the block
// after e.
func (b *builder) chain(current *block.Block, e *sitter.Node) *block.Block {
	var skip *block.Block

	current = b.link(current, e, &skip)
	if skip == nil {
		return current
	}

	current.Link(skip)

	return skip
}

// link evaluates one link of a chain. skip is created by the first ?. link.
func (b *builder) link(current *block.Block, e *sitter.Node, skip **block.Block) *block.Block {
	switch e.Type() {
	case "member_expression":
		current = b.linkObject(current, e.ChildByFieldName("object"), skip)

		return b.shortCircuit(current, e, skip) // property names are not variables

	case "subscript_expression":
		current = b.linkObject(current, e.ChildByFieldName("object"), skip)
		current = b.shortCircuit(current, e, skip)

		return b.expr(current, e.ChildByFieldName("index"))

	default: // call_expression
		fun := e.ChildByFieldName("function")
		current = b.linkObject(current, fun, skip)

		// A direct call of eval can access every variable in scope.
		if fun != nil && fun.Type() == "identifier" && b.text(fun) == "eval" {
			if _, found := b.scope.lookup("eval"); !found {
				b.scope.escapeAll()
			}
		}

		current = b.shortCircuit(current, e, skip)

		return b.expr(current, e.ChildByFieldName("arguments"))
	}
}

// linkObject evaluates the object of a link, continuing the chain through
// nested links. Parentheses end a chain.
func (b *builder) linkObject(current *block.Block, obj *sitter.Node, skip **block.Block) *block.Block {
	if obj == nil {
		return current
	}

	switch obj.Type() {
	case "call_expression", "member_expression", "subscript_expression":
		return b.link(current, obj, skip)

	default:
		return b.expr(current, obj)
	}
}

// shortCircuit branches to skip when e is a ?. link.
func (b *builder) shortCircuit(current *block.Block, e *sitter.Node, skip **block.Block) *block.Block {
	if e.ChildByFieldName("optional_chain") == nil {
		return current
	}

	if *skip == nil {
		*skip = b.New() // after optional chain
	}

	next := b.New() // chain continues
	current.LinkBranch(next, *skip)

	return next
}

// conditional evaluates e on only one branch.
func (b *builder) conditional(current *block.Block, e *sitter.Node) *block.Block {
	after := b.New() // after conditional
	then := b.New()  // conditional evaluation

	current.LinkBranch(then, after)
	b.expr(then, e).Link(after)

	return after
}

// assign handles assignments. The right-hand side is evaluated before the
// variable is written, after the operands of a property target.
func (b *builder) assign(current *block.Block, e *sitter.Node) *block.Block {
	left := unparen(e.ChildByFieldName("left"))
	right := e.ChildByFieldName("right")

	switch left.Type() {
	case "member_expression", "subscript_expression":
		current = b.target(current, left)
		return b.expr(current, right)

	default:
		current = b.expr(current, right)
		return b.target(current, left)
	}
}

// augmentedAssign handles compound assignments. Logical assignments write
// only when the right-hand side is evaluated.
func (b *builder) augmentedAssign(current *block.Block, e *sitter.Node) *block.Block {
	left := unparen(e.ChildByFieldName("left"))
	right := e.ChildByFieldName("right")

	logical := false
	if op := e.ChildByFieldName("operator"); op != nil {
		switch op.Type() {
		case "&&=", "||=", "??=":
			logical = true
		}
	}

	if left.Type() != "identifier" {
		current = b.target(current, left)

		if logical {
			return b.conditional(current, right)
		}

		return b.expr(current, right)
	}

	if !logical {
		current = b.expr(current, right)
		return b.reference(current, left, codepath.ReadWrite)
	}

	current = b.reference(current, left, codepath.Read)

	after := b.New() // after assignment
	then := b.New()  // assignment

	current.LinkBranch(then, after)

	then = b.expr(then, right)
	then = b.reference(then, left, codepath.Write)
	then.Link(after)

	return after
}

// target handles the target of an assignment or binding. Identifiers are
// written, property targets evaluate their operands and default values are
// evaluated conditionally.
func (b *builder) target(current *block.Block, t *sitter.Node) *block.Block {
	if t == nil {
		return current
	}

	switch t.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		return b.reference(current, t, codepath.Write)

	case "member_expression":
		return b.expr(current, t.ChildByFieldName("object"))

	case "subscript_expression":
		current = b.expr(current, t.ChildByFieldName("object"))
		return b.expr(current, t.ChildByFieldName("index"))

	case "parenthesized_expression":
		return b.target(current, unparen(t))

	case "assignment_pattern", "object_assignment_pattern":
		current = b.conditional(current, t.ChildByFieldName("right"))
		return b.target(current, t.ChildByFieldName("left"))

	case "pair_pattern":
		current = b.computedKey(current, t.ChildByFieldName("key"))
		return b.target(current, t.ChildByFieldName("value"))

	case "object_pattern", "array_pattern", "rest_pattern":
		for _, c := range children(t) {
			current = b.target(current, c)
		}

		return current

	default:
		return b.expr(current, t)
	}
}

// reference records an occurrence of a variable. Inside a protected region a
// write gets a block of its own, so handlers observe the value before and after
// the write.
func (b *builder) reference(current *block.Block, id *sitter.Node, access codepath.Access) *block.Block {
	v, found := b.scope.lookup(b.text(id))
	if !found || v == nil {
		return current // global or not analyzed
	}

	if b.with > 0 {
		v.Escapes = true
	}

	ident := &codepath.Ident{Name: v.Name, Pos: b.pos(id), End: b.end(id)}
	v.AddReference(ident, access, b.path.Scope)

	if !access.IsWrite() || len(current.Handlers) == 0 {
		current.Add(ident)
		return current
	}

	write := b.New() // protected write
	current.Link(write)
	write.Add(ident)

	next := b.New() // after write
	write.Link(next)

	return next
}

// escape marks the variable named by id as observable outside the code path.
func (b *builder) escape(id *sitter.Node) {
	if v, _ := b.scope.lookup(b.text(id)); v != nil {
		v.Escapes = true
	}
}
