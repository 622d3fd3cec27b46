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

// Package graph builds code paths for Go function declarations.
package graph

import (
	"context"
	"go/ast"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/flow/block"
)

// Builder creates code paths from type-checked Go syntax.
type Builder struct {
	info   *types.Info
	errors bool // track variables of type error

	numbering *codepath.Numbering
	vars      map[*types.Var]*codepath.Variable
}

// New creates a [Builder]. Variables of type error are only tracked when errors is set.
func New(info *types.Info, errors bool) *Builder {
	return &Builder{
		info:   info,
		errors: errors,
		vars:   make(map[*types.Var]*codepath.Variable),
	}
}

// Build returns the code path of fun, with nested paths for function literals.
func (g *Builder) Build(ctx context.Context, fun *ast.FuncDecl) *codepath.Path {
	defer trace.StartRegion(ctx, "Graph").End()

	g.numbering = new(codepath.Numbering)
	clear(g.vars)

	return g.buildPath(fun.Body)
}

func (g *Builder) buildPath(body *ast.BlockStmt) *codepath.Path {
	p := g.numbering.NewPath(g.numbering.NewScope())

	if body == nil {
		return p
	}

	b := builder{
		Builder: g,
		path:    p,
		labels:  make(map[string]*block.Label),
	}

	entry := b.New()

	_ = b.appendStmtList(entry, body.List)

	p.Segments = b.Segments(g.numbering, entry)

	return p
}
