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

package block_test

import (
	"go/token"
	"slices"
	"testing"

	"fillmore-labs.com/reuseguard/internal/codepath"
	. "fillmore-labs.com/reuseguard/internal/flow/block"
)

func TestBlockFactory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"BlockSize", ChunkSize},
		{"BlockSizePlusOne", ChunkSize + 1},
		{"MultiplePages", 2*ChunkSize + 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var f Factory

			for i := range tt.count {
				b := f.New()
				b.Add(&codepath.Ident{Pos: token.Pos(i + 1)})
			}

			f.New() // empty

			if got, want := f.Len(), tt.count+1; got != want {
				t.Errorf("Got length %d, expected %d", got, want)
			}

			var blocks []*Block
			for b := range f.All() {
				if !b.Empty() {
					blocks = append(blocks, b)
				}
			}

			if got, want := len(blocks), tt.count; got != want {
				t.Errorf("Got %d blocks, expected %d", got, want)
			}

			for i, b := range blocks {
				if got, want := b.Idents[0].Pos, token.Pos(i+1); got != want {
					t.Errorf("Got position %d for block %d, expected %d", got, i, want)
				}
			}
		})
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	var f Factory

	entry := f.New()   // empty entry
	cond := f.New()    // x
	empty := f.New()   // flattened
	body := f.New()    // y
	after := f.New()   // z
	handler := f.New() // h
	cond.Add(&codepath.Ident{Name: "x"})
	body.Add(&codepath.Ident{Name: "y"})
	after.Add(&codepath.Ident{Name: "z"})
	handler.Add(&codepath.Ident{Name: "h"})

	entry.Link(cond)
	cond.LinkBranch(empty, after)
	empty.Link(body)
	body.Link(cond)
	body.Handlers = []*Block{handler}

	var n codepath.Numbering

	segments := f.Segments(&n, entry)
	if got, want := len(segments), 5; got != want {
		t.Fatalf("Got %d segments, expected %d", got, want)
	}

	names := func(ss []*codepath.Segment) []string {
		var s []string
		for _, seg := range ss {
			s = append(s, seg.Idents[0].Name)
		}

		return s
	}

	if got := segments[0]; len(got.Idents) != 0 || !slices.Equal(names(got.Next), []string{"x"}) {
		t.Errorf("Got entry %+v, expected empty entry linked to x", got)
	}

	tests := []struct {
		segment int
		want    []string
	}{
		{1, []string{"y", "z"}},
		{2, []string{"x", "h"}},
		{3, nil},
	}

	for _, tt := range tests {
		if got := names(segments[tt.segment].Next); !slices.Equal(got, tt.want) {
			t.Errorf("Got successors %q for segment %d, expected %q", got, tt.segment, tt.want)
		}
	}
}

func TestTargets(t *testing.T) {
	t.Parallel()

	var (
		f Factory
		s Targets
	)

	outer, inner := f.New(), f.New()
	l := NewLabel(outer)

	old := s.Enter(Break, outer, nil)
	oldInner := s.Enter(Break, inner, l)

	if s.Target(Break) != inner || l.Target(Break) != inner {
		t.Error("Expected inner break target")
	}

	s.Leave(Break, oldInner)

	if s.Target(Break) != outer {
		t.Error("Expected outer break target")
	}

	s.Leave(Break, old)

	if s.Target(Break) != nil || s.Target(Goto) != nil {
		t.Error("Expected no break target")
	}

	s.Leave(Fallthrough, s.Enter(Fallthrough, inner, l))

	if l.Target(Goto) != outer || l.Target(Continue) != nil || l.Target(Fallthrough) != nil {
		t.Error("Unexpected label targets")
	}
}

func TestJumpOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tok  token.Token
		want Jump
	}{
		{token.BREAK, Break},
		{token.CONTINUE, Continue},
		{token.FALLTHROUGH, Fallthrough},
		{token.GOTO, Goto},
	}

	for _, tt := range tests {
		if got := JumpOf(tt.tok); got != tt.want {
			t.Errorf("Got %d for %s, expected %d", got, tt.tok, tt.want)
		}
	}
}
