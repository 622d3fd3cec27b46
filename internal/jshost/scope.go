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
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/reuseguard/internal/codepath"
)

// scope is a lexical scope. Names bound to a nil variable shadow outer
// variables without being analyzed.
type scope struct {
	parent *scope
	path   *codepath.Path // code path owning the variables of this scope
	names  map[string]*codepath.Variable
}

func newScope(parent *scope, p *codepath.Path) *scope {
	return &scope{parent: parent, path: p, names: make(map[string]*codepath.Variable)}
}

// lookup resolves name. found is false for unresolved (global) names.
func (s *scope) lookup(name string) (v *codepath.Variable, found bool) {
	for ; s != nil; s = s.parent {
		if v, ok := s.names[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// bind declares a binding that is not analyzed, unless name is already declared.
func (s *scope) bind(name string) {
	if _, ok := s.names[name]; !ok {
		s.names[name] = nil
	}
}

// declare declares an analyzed variable. Redeclarations return the existing binding.
func (s *scope) declare(name string, pos token.Pos) *codepath.Variable {
	if v, ok := s.names[name]; ok {
		return v
	}

	v := &codepath.Variable{Name: name, Pos: pos, Scope: s.path.Scope}
	s.names[name] = v
	s.path.Variables = append(s.path.Variables, v)

	return v
}

// escapeAll marks every variable visible from s as escaping.
func (s *scope) escapeAll() {
	for ; s != nil; s = s.parent {
		for _, v := range s.names {
			if v != nil {
				v.Escapes = true
			}
		}
	}
}

// hoist binds the function declarations of a function body and declares all var
// declarations below it, stopping at nested functions and classes.
func (b *builder) hoist(s *scope, body *sitter.Node) {
	for _, st := range children(body) {
		if st.Type() == "export_statement" {
			if decl := st.ChildByFieldName("declaration"); decl != nil {
				st = decl
			}
		}

		if isFunctionDeclaration(st) {
			if name := st.ChildByFieldName("name"); name != nil {
				s.bind(b.text(name))
			}
		}
	}

	b.hoistVars(s, body)
}

func (b *builder) hoistVars(s *scope, n *sitter.Node) {
	switch n.Type() {
	case "variable_declaration":
		for _, d := range children(n) {
			if d.Type() == "variable_declarator" {
				b.declareNames(s, d.ChildByFieldName("name"))
			}
		}

		return

	case "for_in_statement":
		if declarationKind(n) == "var" {
			b.declareNames(s, n.ChildByFieldName("left"))
		}

	default:
		if isFunction(n) || isClass(n) {
			return
		}
	}

	for _, c := range children(n) {
		b.hoistVars(s, c)
	}
}

// declareLexical declares the let, const and class declarations of a statement list in s.
func (b *builder) declareLexical(s *scope, list []*sitter.Node) {
	for _, st := range list {
		b.declareStatement(s, st)
	}
}

func (b *builder) declareStatement(s *scope, st *sitter.Node) {
	switch t := st.Type(); {
	case t == "lexical_declaration":
		for _, d := range children(st) {
			if d.Type() == "variable_declarator" {
				b.declareNames(s, d.ChildByFieldName("name"))
			}
		}

	case t == "class_declaration" || isFunctionDeclaration(st):
		if name := st.ChildByFieldName("name"); name != nil {
			s.bind(b.text(name))
		}

	case t == "import_statement":
		b.bindImports(s, st)

	case t == "export_statement":
		if decl := st.ChildByFieldName("declaration"); decl != nil {
			b.declareStatement(s, decl)
		}
	}
}

func (b *builder) declareNames(s *scope, pattern *sitter.Node) {
	bindingNames(pattern, func(id *sitter.Node) { s.declare(b.text(id), b.pos(id)) })
}

func (b *builder) bindNames(s *scope, pattern *sitter.Node) {
	bindingNames(pattern, func(id *sitter.Node) { s.bind(b.text(id)) })
}

func (b *builder) bindImports(s *scope, n *sitter.Node) {
	switch n.Type() {
	case "import_specifier":
		name := n.ChildByFieldName("alias")
		if name == nil {
			name = n.ChildByFieldName("name")
		}

		if name != nil {
			s.bind(b.text(name))
		}

	case "identifier":
		s.bind(b.text(n))

	case "string":

	default:
		for _, c := range children(n) {
			b.bindImports(s, c)
		}
	}
}

// bindingNames calls fn for every identifier bound by a declaration pattern.
func bindingNames(n *sitter.Node, fn func(id *sitter.Node)) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		fn(n)

	case "assignment_pattern", "object_assignment_pattern":
		bindingNames(n.ChildByFieldName("left"), fn)

	case "pair_pattern":
		bindingNames(n.ChildByFieldName("value"), fn)

	case "object_pattern", "array_pattern", "rest_pattern", "formal_parameters":
		for _, c := range children(n) {
			bindingNames(c, fn)
		}
	}
}
