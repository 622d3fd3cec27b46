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

// Package defuse follows code paths forward from a write to the reads it reaches.
package defuse

import (
	"slices"

	"fillmore-labs.com/reuseguard/internal/codepath"
)

// Graph is the indexed view of a traversal needed for propagation.
type Graph interface {
	// SegmentOf returns the segment an identifier was visited in.
	SegmentOf(id *codepath.Ident) (*codepath.Segment, bool)
	// Identifiers returns the identifiers of a segment in visiting order.
	Identifiers(s *codepath.Segment) []*codepath.Ident
}

// Propagator computes reached reads for the writes of a single variable.
type Propagator struct {
	graph Graph
	refs  map[*codepath.Ident]*codepath.Reference
}

// New creates a [Propagator] for the references of v.
func New(g Graph, v *codepath.Variable) *Propagator {
	refs := make(map[*codepath.Ident]*codepath.Reference, len(v.References))
	for _, ref := range v.References {
		refs[ref.Ident] = ref
	}

	return &Propagator{graph: g, refs: refs}
}

// ReadsReachedBy returns the reads of the variable that can observe the value stored by write.
//
// The search follows all successor segments and stops a branch at the next write.
// A read-write reference is collected and then stops the branch. ok is false when
// the segment of write is unknown.
func (p *Propagator) ReadsReachedBy(write *codepath.Reference) (reads []*codepath.Reference, ok bool) {
	start, ok := p.graph.SegmentOf(write.Ident)
	if !ok {
		return nil, false
	}

	idents := p.graph.Identifiers(start)

	i := slices.Index(idents, write.Ident)
	if i < 0 {
		return nil, false
	}

	reads, open := p.scan(reads, idents[i+1:])
	if !open {
		return reads, true
	}

	// The start segment is not marked as visited, reentering it over a back edge
	// scans its prefix up to the write, which then ends the branch.
	visited := make(map[*codepath.Segment]struct{})

	var work []*codepath.Segment
	work = pushSuccessors(work, start)

	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}

		if reads, open = p.scan(reads, p.graph.Identifiers(s)); open {
			work = pushSuccessors(work, s)
		}
	}

	return reads, true
}

// scan collects reads until the next write. open is true when no write was found.
func (p *Propagator) scan(reads []*codepath.Reference, idents []*codepath.Ident) (_ []*codepath.Reference, open bool) {
	for _, id := range idents {
		ref, ok := p.refs[id]
		if !ok {
			continue // other variable
		}

		if ref.IsRead() {
			reads = append(reads, ref)
		}

		if ref.IsWrite() {
			return reads, false
		}
	}

	return reads, true
}

// pushSuccessors pushes in reverse, so the first successor is searched first.
func pushSuccessors(work []*codepath.Segment, s *codepath.Segment) []*codepath.Segment {
	for _, next := range slices.Backward(s.Next) {
		work = append(work, next)
	}

	return work
}
