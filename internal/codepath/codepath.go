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

package codepath

import "go/token"

// ScopeID identifies a variable scope, the function or module body a variable is bound in.
type ScopeID int32

// Ident is a single identifier occurrence in the source.
type Ident struct {
	Name     string
	Pos, End token.Pos
}

// Reference is an occurrence of a variable.
type Reference struct {
	Ident  *Ident
	Access Access
	From   ScopeID // The variable scope the occurrence is in
}

// IsRead reports whether the reference observes the variable's value.
func (r *Reference) IsRead() bool { return r.Access.IsRead() }

// IsWrite reports whether the reference stores a new value.
func (r *Reference) IsWrite() bool { return r.Access.IsWrite() }

// Variable is a named storage location bound in exactly one variable scope.
type Variable struct {
	Name  string
	Pos   token.Pos // Declaration position
	Scope ScopeID   // Declaring variable scope

	// References in evaluation order.
	References []*Reference

	// Escapes is set when the variable may be observed outside the control-flow graph,
	// e.g. through a pointer or dynamic scope lookup.
	Escapes bool
}

// AddReference appends an occurrence of the variable and returns it.
func (v *Variable) AddReference(id *Ident, access Access, from ScopeID) *Reference {
	ref := &Reference{Ident: id, Access: access, From: from}
	v.References = append(v.References, ref)

	return ref
}

// Segment is a basic block of a [Path].
type Segment struct {
	ID     int
	Next   []*Segment // Successor segments, including loop back edges
	Idents []*Ident   // Identifier occurrences in evaluation order
}

// Path is the control-flow graph of one function or module body.
type Path struct {
	ID    int
	Scope ScopeID

	// Segments of this path, the entry segment first.
	Segments []*Segment

	// Variables declared directly in this path's scope.
	Variables []*Variable

	// Paths of nested functions.
	Children []*Path
}

// Entry returns the entry segment, or nil for an empty path.
func (p *Path) Entry() *Segment {
	if len(p.Segments) == 0 {
		return nil
	}

	return p.Segments[0]
}

// Numbering hands out identifiers for one traversal.
type Numbering struct {
	paths, segments int
	scopes          ScopeID
}

// NewScope returns a fresh variable scope identifier.
func (n *Numbering) NewScope() ScopeID {
	n.scopes++
	return n.scopes
}

// NewPath returns a new, empty [Path] for the given scope.
func (n *Numbering) NewPath(scope ScopeID) *Path {
	n.paths++
	return &Path{ID: n.paths, Scope: scope}
}

// NewSegment returns a new, unlinked [Segment].
func (n *Numbering) NewSegment() *Segment {
	n.segments++
	return &Segment{ID: n.segments}
}
