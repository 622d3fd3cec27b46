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

// Package jshost builds code paths from JavaScript source.
//
// Every function, method, arrow function, class field initializer and static
// block is a code path nested in the code path of the program. Identifiers
// are resolved lexically: var declarations and function declarations are
// hoisted to the enclosing function, let, const and class declarations are
// scoped to their block. Only variables declared with var, let or const are
// analyzed. Other bindings shadow outer variables.
package jshost

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"runtime/trace"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"fillmore-labs.com/reuseguard/internal/codepath"
)

// ErrSyntax is returned for source that does not parse as JavaScript.
var ErrSyntax = errors.New("syntax error")

// Parse parses JavaScript source. The caller closes the returned tree.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	if root := tree.RootNode(); root.HasError() {
		n := firstError(root)
		p := n.StartPoint()
		err := fmt.Errorf("%w at %d:%d near %q", ErrSyntax, p.Row+1, p.Column+1, excerpt(n, src))
		tree.Close()

		return nil, err
	}

	return tree, nil
}

// Build parses src and returns the code path of the program.
// Positions are relative to file, which must have the size of src.
func Build(ctx context.Context, file *token.File, src []byte) (*codepath.Path, error) {
	tree, err := Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	defer trace.StartRegion(ctx, "Graph").End()

	h := host{
		file:      file,
		src:       src,
		numbering: new(codepath.Numbering),
	}

	return h.program(tree.RootNode()), nil
}

// host holds the state shared by all code paths of a program.
type host struct {
	file      *token.File
	src       []byte
	numbering *codepath.Numbering

	with int // nesting depth of with statement bodies
}

func (h *host) pos(n *sitter.Node) token.Pos {
	return h.file.Pos(int(n.StartByte()))
}

func (h *host) end(n *sitter.Node) token.Pos {
	return h.file.Pos(int(n.EndByte()))
}

func (h *host) text(n *sitter.Node) string {
	return n.Content(h.src)
}

// firstError returns the first erroneous or missing node below n.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && (c.HasError() || c.IsMissing()) {
			return firstError(c)
		}
	}

	return n
}

func excerpt(n *sitter.Node, src []byte) string {
	const maxLen = 20

	text := n.Content(src)
	if len(text) > maxLen {
		text = text[:maxLen] + "…"
	}

	return text
}
