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

package block

import "fillmore-labs.com/reuseguard/internal/codepath"

// Segments converts the blocks of f into code path segments, entry first.
//
// Empty blocks other than entry are removed and edges through them are
// flattened to their successors.
func (f *Factory) Segments(n *codepath.Numbering, entry *Block) []*codepath.Segment {
	blocks := make([]*Block, 0, f.Len())
	for b := range f.All() {
		if b == entry || !b.Empty() {
			blocks = append(blocks, b)
		}
	}

	// Build index map: maps each block to its segment
	segments := make([]*codepath.Segment, len(blocks))
	idxMap := make(map[*Block]*codepath.Segment, len(blocks))
	for i, block := range blocks {
		s := n.NewSegment()
		s.Idents = block.Idents
		segments[i] = s
		idxMap[block] = s
	}

	// Reusable set for tracking visited blocks during recursive successor traversal
	seen := make(map[*Block]struct{}, len(blocks))

	for i, block := range blocks {
		segments[i].Next = appendSuccessors(nil, block, idxMap, seen)

		clear(seen) // Reset the seen set for the next iteration
	}

	return segments
}

// appendSuccessors recursively collects successor segments.
func appendSuccessors(successors []*codepath.Segment, b *Block, idxMap map[*Block]*codepath.Segment, seen map[*Block]struct{}) []*codepath.Segment {
	for _, succ := range [...]*Block{b.Successor1, b.Successor2} {
		successors = appendSuccessor(successors, succ, idxMap, seen)
	}

	for _, succ := range b.Handlers {
		successors = appendSuccessor(successors, succ, idxMap, seen)
	}

	return successors
}

func appendSuccessor(successors []*codepath.Segment, succ *Block, idxMap map[*Block]*codepath.Segment, seen map[*Block]struct{}) []*codepath.Segment {
	if succ == nil {
		return successors
	}

	if _, ok := seen[succ]; ok { // prevent infinite recursion
		return successors
	}
	seen[succ] = struct{}{}

	s, ok := idxMap[succ]
	if !ok {
		// This successor is an empty block and was removed from idxMap.
		// Recursively flatten it by including its successors instead.
		return appendSuccessors(successors, succ, idxMap, seen)
	}

	return append(successors, s)
}
