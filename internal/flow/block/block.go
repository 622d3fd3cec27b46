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

// Package block provides the basic blocks used while building code paths.
package block

import "fillmore-labs.com/reuseguard/internal/codepath"

// Block represents a [basic Block] in the [control-flow graph].
// It is a sequence of identifier occurrences with a single entry and exit point.
//
// [basic Block]: https://en.wikipedia.org/wiki/Basic_block
// [control-flow graph]: https://en.wikipedia.org/wiki/Control-flow_graph
type Block struct {
	Idents []*codepath.Ident

	// The successors.
	//
	// For unconditional jumps, Successor1 is the only successor.
	// For conditional branches, Successor1 is the "then" branch,
	// Successor2 the "else" branch.
	Successor1, Successor2 *Block

	// Handlers are reached when an exception is thrown anywhere in the block.
	Handlers []*Block
}

// Empty reports whether no identifiers have been added yet.
func (b *Block) Empty() bool {
	return len(b.Idents) == 0
}

// Add appends an identifier occurrence to the block.
func (b *Block) Add(id *codepath.Ident) {
	b.Idents = append(b.Idents, id)
}

// Link sets next as the only successor.
func (b *Block) Link(next *Block) {
	b.Successor1, b.Successor2 = next, nil
}

// LinkBranch sets the successors for a conditional branch.
func (b *Block) LinkBranch(then, els *Block) {
	b.Successor1, b.Successor2 = then, els
}

// LinkClause sets the successors for a clause in a chain (switch/select).
//
// It links the current clause to the next clause in the chain, while optionally
// branching to a body if the clause is not the start of the chain.
//
//	current -> clause -> clause -> ...
//	              |         |
//	              v         v
//	            body      body
func (b *Block) LinkClause(body, next *Block) {
	if body == nil {
		b.Successor1 = next
		return
	}

	b.Successor1, b.Successor2 = body, next
}
