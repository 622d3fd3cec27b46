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

// Listener receives the structural events of a traversal in program order.
//
// Code path and segment events nest properly. Successors of a segment are
// known when [Listener.SegmentEnd] is delivered.
type Listener interface {
	CodePathStart(p *Path) error
	CodePathEnd(p *Path) error
	SegmentStart(s *Segment) error
	SegmentEnd(s *Segment) error
	IdentifierVisited(id *Ident) error
	VariableDeclared(v *Variable) error
}

// Replay delivers the events for p and its nested paths to l.
//
// Segments are delivered first, then the declared variables, then the
// nested paths, so every path ends before its parent.
func Replay(p *Path, l Listener) error {
	if err := l.CodePathStart(p); err != nil {
		return err
	}

	for _, s := range p.Segments {
		if err := replaySegment(s, l); err != nil {
			return err
		}
	}

	for _, v := range p.Variables {
		if err := l.VariableDeclared(v); err != nil {
			return err
		}
	}

	for _, c := range p.Children {
		if err := Replay(c, l); err != nil {
			return err
		}
	}

	return l.CodePathEnd(p)
}

func replaySegment(s *Segment, l Listener) error {
	if err := l.SegmentStart(s); err != nil {
		return err
	}

	for _, id := range s.Idents {
		if err := l.IdentifierVisited(id); err != nil {
			return err
		}
	}

	return l.SegmentEnd(s)
}
