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
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/reuseguard/internal/flow/block"
)

// finally is an enclosing finally block. Branches leaving its try block or
// catch clause pass through it.
type finally struct {
	entry *block.Block
	exits []*block.Block // Branch targets continued after the finally block, nil for return
}

// appendTryStmt handles try statements.
//
// Every block of the try block may throw to the catch clause, or to the
// finally block when there is no catch clause.
func (b *builder) appendTryStmt(current *block.Block, stmt *sitter.Node) *block.Block {
	handler := stmt.ChildByFieldName("handler")
	finalizer := stmt.ChildByFieldName("finalizer")

	outer := b.Handlers
	after := b.New() // after try

	defer func() { b.Handlers = outer }()

	next := after

	var fin *finally
	if finalizer != nil {
		fin = &finally{entry: b.New()} // finally block
		b.finallies = append(b.finallies, fin)
		next = fin.entry
	}

	var catch *block.Block
	if handler != nil {
		if fin != nil {
			b.Handlers = []*block.Block{fin.entry}
		}

		catch = b.New() // catch clause
		b.Handlers = []*block.Block{catch}
	} else if fin != nil {
		b.Handlers = []*block.Block{fin.entry}
	}

	try := b.New() // try block
	current.Link(try)

	tryEnd := b.appendStmt(try, stmt.ChildByFieldName("body"), nil)
	tryEnd.Link(next)

	if catch != nil {
		b.Handlers = outer
		if fin != nil {
			b.Handlers = []*block.Block{fin.entry}
		}

		catchEnd := b.appendCatchClause(catch, handler)
		catchEnd.Link(next)
	}

	b.Handlers = outer

	if fin == nil {
		return after
	}

	b.finallies = b.finallies[:len(b.finallies)-1]

	finEnd := fin.entry
	if body := finalizer.ChildByFieldName("body"); body != nil {
		finEnd = b.appendStmt(finEnd, body, nil)
	}

	b.leaveFinally(finEnd, after, fin.exits)

	return after
}

// appendCatchClause handles a catch clause. The catch parameter is not analyzed.
func (b *builder) appendCatchClause(current *block.Block, clause *sitter.Node) *block.Block {
	outer := b.scope
	b.scope = newScope(outer, b.path)

	defer func() { b.scope = outer }()

	if param := clause.ChildByFieldName("parameter"); param != nil {
		b.bindNames(b.scope, param)
		current = b.target(current, param)
	}

	body := clause.ChildByFieldName("body")
	if body == nil {
		return current
	}

	return b.appendStmt(current, body, nil)
}

// jump links current to a branch target. A branch leaving a try block or catch
// clause continues in the innermost finally block it leaves. A nil target is
// the function exit.
func (b *builder) jump(current, target *block.Block) {
	depth := 0
	if target != nil {
		depth = b.depth[target]
	}

	if n := len(b.finallies); n > depth {
		fin := b.finallies[n-1]
		current.Link(fin.entry)

		if !slices.Contains(fin.exits, target) {
			fin.exits = append(fin.exits, target)
		}

		return
	}

	if target != nil {
		current.Link(target)
	}
}

// leaveFinally links the end of a finally block to the statement after the try
// statement and to every branch target deferred through it.
func (b *builder) leaveFinally(end, after *block.Block, exits []*block.Block) {
	targets := make([]*block.Block, 0, 1+len(exits))
	targets = append(targets, after)

	for _, exit := range exits {
		dispatch := b.New() // resume branch
		b.jump(dispatch, exit)

		targets = append(targets, dispatch)
	}

	for len(targets) > 2 {
		next := b.New() // next branch
		end.LinkBranch(targets[0], next)
		end, targets = next, targets[1:]
	}

	if len(targets) == 2 {
		end.LinkBranch(targets[0], targets[1])
	} else {
		end.Link(targets[0])
	}
}
