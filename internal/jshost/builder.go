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

// builder constructs the control flow graph of a single code path.
//
// The append* methods and expr return the next basic [block] where references should be added.
type builder struct {
	*host

	block.Factory                         // All blocks created during traversal
	path          *codepath.Path          // The code path under construction
	scope         *scope                  // The innermost lexical scope
	labels        map[string]*block.Label // Maps label names to their target blocks
	targets       block.Targets           // Current break/continue targets

	finallies []*finally           // Enclosing finally clauses, innermost last
	depth     map[*block.Block]int // Number of enclosing finally clauses of a branch target
}

func (h *host) newBuilder(p *codepath.Path, parent *scope) *builder {
	return &builder{
		host:   h,
		path:   p,
		scope:  newScope(parent, p),
		labels: make(map[string]*block.Label),
		depth:  make(map[*block.Block]int),
	}
}

// program builds the code path of a module body.
func (h *host) program(root *sitter.Node) *codepath.Path {
	p := h.numbering.NewPath(h.numbering.NewScope())
	b := h.newBuilder(p, nil)

	list := children(root)
	b.hoist(b.scope, root)
	b.declareLexical(b.scope, list)

	entry := b.New()
	b.appendStmtList(entry, list)

	p.Segments = b.Segments(h.numbering, entry)

	return p
}

// nested builds a child code path with its own variable scope.
func (b *builder) nested(build func(c *builder, entry *block.Block)) {
	p := b.numbering.NewPath(b.numbering.NewScope())
	b.path.Children = append(b.path.Children, p)

	c := b.newBuilder(p, b.scope)

	entry := c.New()
	build(c, entry)

	p.Segments = c.Segments(b.numbering, entry)
}

// function builds the code path of a function, method or arrow function.
func (b *builder) function(fun *sitter.Node) {
	b.nested(func(c *builder, current *block.Block) {
		if isFunctionExpression(fun) {
			if name := fun.ChildByFieldName("name"); name != nil {
				c.scope.bind(c.text(name))
			}
		}

		var params []*sitter.Node
		if list := fun.ChildByFieldName("parameters"); list != nil {
			params = children(list)
		} else if param := fun.ChildByFieldName("parameter"); param != nil {
			params = []*sitter.Node{param}
		}

		for _, param := range params {
			c.bindNames(c.scope, param)
		}

		body := fun.ChildByFieldName("body")
		if body == nil {
			return
		}

		isBlock := body.Type() == "statement_block"
		if isBlock {
			c.hoist(c.scope, body)
			c.declareLexical(c.scope, children(body))
		}

		// Parameter defaults are evaluated on entry
		for _, param := range params {
			current = c.target(current, param)
		}

		if isBlock {
			c.appendStmtList(current, children(body))
		} else {
			c.expr(current, body)
		}
	})
}

// staticBlock builds the code path of a class static initialization block.
func (b *builder) staticBlock(body *sitter.Node) {
	b.nested(func(c *builder, current *block.Block) {
		list := children(body)
		c.hoist(c.scope, body)
		c.declareLexical(c.scope, list)
		c.appendStmtList(current, list)
	})
}

// initializer builds the code path of a class field initializer.
func (b *builder) initializer(value *sitter.Node) {
	b.nested(func(c *builder, current *block.Block) {
		c.expr(current, value)
	})
}

// class handles class declarations and expressions.
// Heritage and computed member names are evaluated in the current path.
func (b *builder) class(current *block.Block, class *sitter.Node) *block.Block {
	outer := b.scope
	b.scope = newScope(outer, b.path)

	defer func() { b.scope = outer }()

	if name := class.ChildByFieldName("name"); name != nil {
		b.scope.bind(b.text(name))
	}

	for _, c := range children(class) {
		switch c.Type() {
		case "class_heritage", "decorator":
			current = b.expr(current, c)

		case "class_body":
			current = b.classBody(current, c)
		}
	}

	return current
}

func (b *builder) classBody(current *block.Block, body *sitter.Node) *block.Block {
	for _, member := range children(body) {
		switch member.Type() {
		case "method_definition":
			current = b.computedKey(current, member.ChildByFieldName("name"))
			b.function(member)

		case "field_definition":
			current = b.computedKey(current, member.ChildByFieldName("property"))
			if value := member.ChildByFieldName("value"); value != nil {
				b.initializer(value)
			}

		case "class_static_block":
			if body := member.ChildByFieldName("body"); body != nil {
				b.staticBlock(body)
			}
		}
	}

	return current
}

func (b *builder) computedKey(current *block.Block, key *sitter.Node) *block.Block {
	if key == nil || key.Type() != "computed_property_name" {
		return current
	}

	return b.expr(current, key)
}

// children returns the named children of n, omitting comments.
func children(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	list := make([]*sitter.Node, 0, count)

	for i := range count {
		c := n.NamedChild(i)
		if c == nil || c.Type() == "comment" || c.Type() == "hash_bang_line" {
			continue
		}

		list = append(list, c)
	}

	return list
}

// unparen returns n with any enclosing parentheses removed.
func unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" {
		list := children(n)
		if len(list) != 1 {
			break
		}

		n = list[0]
	}

	return n
}

func isFunctionDeclaration(n *sitter.Node) bool {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return true

	default:
		return false
	}
}

func isFunctionExpression(n *sitter.Node) bool {
	switch n.Type() {
	case "function_expression", "function", "generator_function":
		return true

	default:
		return false
	}
}

func isFunction(n *sitter.Node) bool {
	return isFunctionDeclaration(n) || isFunctionExpression(n) ||
		n.Type() == "arrow_function" || n.Type() == "method_definition"
}

func isClass(n *sitter.Node) bool {
	return n.Type() == "class" || n.Type() == "class_declaration"
}
