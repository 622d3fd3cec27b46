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

package testsource

import (
	"go/token"

	"fillmore-labs.com/reuseguard/internal/codepath"
)

// Graph builds code paths by hand.
//
// Every identifier gets a fresh, increasing position, so program order
// follows construction order.
type Graph struct {
	numbering codepath.Numbering
	pos       token.Pos
	Root      *codepath.Path
}

// NewGraph creates a [Graph] with an empty root path.
func NewGraph() *Graph {
	g := &Graph{pos: 1}
	g.Root = g.numbering.NewPath(g.numbering.NewScope())

	return g
}

// Path adds a nested path to parent.
func (g *Graph) Path(parent *codepath.Path) *codepath.Path {
	p := g.numbering.NewPath(g.numbering.NewScope())
	parent.Children = append(parent.Children, p)

	return p
}

// Segment adds a segment to p. The first segment is the entry.
func (g *Graph) Segment(p *codepath.Path) *codepath.Segment {
	s := g.numbering.NewSegment()
	p.Segments = append(p.Segments, s)

	return s
}

// Declare adds a variable to p.
func (g *Graph) Declare(p *codepath.Path, name string) *codepath.Variable {
	v := &codepath.Variable{Name: name, Pos: g.pos, Scope: p.Scope}
	p.Variables = append(p.Variables, v)

	return v
}

// Ident appends an identifier occurrence to s.
func (g *Graph) Ident(s *codepath.Segment, name string) *codepath.Ident {
	id := &codepath.Ident{Name: name, Pos: g.pos, End: g.pos + token.Pos(len(name))}
	g.pos += 10
	s.Idents = append(s.Idents, id)

	return id
}

// Ref appends a reference to v, visited in segment s of path p.
func (g *Graph) Ref(p *codepath.Path, s *codepath.Segment, v *codepath.Variable, access codepath.Access) *codepath.Reference {
	return v.AddReference(g.Ident(s, v.Name), access, p.Scope)
}

// Link adds edges from s to each successor.
func Link(s *codepath.Segment, next ...*codepath.Segment) {
	s.Next = append(s.Next, next...)
}

// SegmentIndex maps identifiers to their segments without replaying events.
type SegmentIndex map[*codepath.Ident]*codepath.Segment

// IndexPath builds a [SegmentIndex] over p and its nested paths.
func IndexPath(p *codepath.Path) SegmentIndex {
	x := make(SegmentIndex)
	x.add(p)

	return x
}

func (x SegmentIndex) add(p *codepath.Path) {
	for _, s := range p.Segments {
		for _, id := range s.Idents {
			x[id] = s
		}
	}

	for _, c := range p.Children {
		x.add(c)
	}
}

// SegmentOf returns the segment id was added to.
func (x SegmentIndex) SegmentOf(id *codepath.Ident) (*codepath.Segment, bool) {
	s, ok := x[id]
	return s, ok
}

// Identifiers returns the identifiers of s.
func (SegmentIndex) Identifiers(s *codepath.Segment) []*codepath.Ident {
	return s.Idents
}
