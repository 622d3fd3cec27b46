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

// Package refindex records which code path segment each visited identifier falls in.
package refindex

import (
	"errors"
	"fmt"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/collect"
)

// ErrUnbalanced is returned when a segment exit does not match the active segment.
var ErrUnbalanced = errors.New("unbalanced segment exit")

// Index maps identifier occurrences to segments and segments to their identifiers.
//
// An Index serves exactly one traversal and is not safe for concurrent use.
type Index struct {
	active    collect.Stack[*codepath.Segment]
	segmentOf map[*codepath.Ident]*codepath.Segment
	idents    collect.ListMap[*codepath.Segment, *codepath.Ident]
}

// New creates an empty [Index].
func New() *Index {
	return &Index{segmentOf: make(map[*codepath.Ident]*codepath.Segment)}
}

// Enter makes s the active segment.
func (x *Index) Enter(s *codepath.Segment) {
	x.active.Push(s)
}

// Exit leaves the active segment, which must be s.
func (x *Index) Exit(s *codepath.Segment) error {
	top, ok := x.active.Peek()
	switch {
	case !ok:
		return fmt.Errorf("%w: segment %d without active segment", ErrUnbalanced, s.ID)

	case top != s:
		return fmt.Errorf("%w: segment %d while segment %d is active", ErrUnbalanced, s.ID, top.ID)
	}

	x.active.Pop()

	return nil
}

// Depth returns the number of active segments.
func (x *Index) Depth() int {
	return x.active.Len()
}

// Visit records id in the active segment. Identifiers outside any segment are
// not indexed and Visit reports false.
func (x *Index) Visit(id *codepath.Ident) bool {
	s, ok := x.active.Peek()
	if !ok {
		return false
	}

	x.segmentOf[id] = s
	x.idents.Add(s, id)

	return true
}

// SegmentOf returns the segment id was visited in.
func (x *Index) SegmentOf(id *codepath.Ident) (*codepath.Segment, bool) {
	s, ok := x.segmentOf[id]
	return s, ok
}

// Identifiers returns the identifiers visited in s, in visiting order.
func (x *Index) Identifiers(s *codepath.Segment) []*codepath.Ident {
	return x.idents.Get(s)
}

// Reset discards all recorded state.
func (x *Index) Reset() {
	x.active.Clear()
	clear(x.segmentOf)
	x.idents.Clear()
}
