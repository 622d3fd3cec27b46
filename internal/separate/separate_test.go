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

package separate_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/reuseguard/internal/codepath"
	. "fillmore-labs.com/reuseguard/internal/separate"
	"fillmore-labs.com/reuseguard/internal/testsource"
)

const (
	r = codepath.Read
	w = codepath.Write
)

type fixture struct {
	g    *testsource.Graph
	x    *codepath.Variable
	want []*codepath.Reference
}

// let x = 0; log(x); x = 1; log(x);
func sequential() fixture {
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s := g.Segment(p)

	g.Ref(p, s, x, w)
	g.Ident(s, "log")
	g.Ref(p, s, x, r)
	w1 := g.Ref(p, s, x, w)
	g.Ident(s, "log")
	g.Ref(p, s, x, r)

	return fixture{g, x, []*codepath.Reference{w1}}
}

// let x = 0; if (cond) x = 1; log(x);
func conditional() fixture {
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s0, s1, s2 := g.Segment(p), g.Segment(p), g.Segment(p)
	testsource.Link(s0, s1, s2)
	testsource.Link(s1, s2)

	g.Ref(p, s0, x, w)
	g.Ident(s0, "cond")
	g.Ref(p, s1, x, w)
	g.Ident(s2, "log")
	g.Ref(p, s2, x, r)

	return fixture{g, x, nil}
}

// let x = 0; function f() { x = 1; } log(x);
func captured() fixture {
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s := g.Segment(p)
	f := g.Path(p)
	fs := g.Segment(f)

	g.Ref(p, s, x, w)
	g.Ref(f, fs, x, w)
	g.Ident(s, "log")
	g.Ref(p, s, x, r)

	return fixture{g, x, nil}
}

// let x = 0; log(x); while (cond) { x = 2; log(x); }
func loop() fixture {
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s0, s1, s2, s3 := g.Segment(p), g.Segment(p), g.Segment(p), g.Segment(p)
	testsource.Link(s0, s1)
	testsource.Link(s1, s2, s3)
	testsource.Link(s2, s1)

	g.Ref(p, s0, x, w)
	g.Ident(s0, "log")
	g.Ref(p, s0, x, r)
	g.Ident(s1, "cond")
	w2 := g.Ref(p, s2, x, w)
	g.Ident(s2, "log")
	g.Ref(p, s2, x, r)

	return fixture{g, x, []*codepath.Reference{w2}}
}

// x = 0; x = 1; log(x); x = 2;
func deadStores() fixture {
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s := g.Segment(p)

	g.Ref(p, s, x, w)
	g.Ref(p, s, x, w)
	g.Ref(p, s, x, r)
	g.Ref(p, s, x, w)

	return fixture{g, x, []*codepath.Reference{x.References[1]}}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func() fixture
		status Status
	}{
		{"Sequential", sequential, Analyzed},
		{"Conditional", conditional, Analyzed},
		{"Captured", captured, CrossScope},
		{"Loop", loop, Analyzed},
		{"DeadStores", deadStores, Analyzed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.build()
			d := New(testsource.IndexPath(f.g.Root), false)

			got, status := d.Analyze(f.x)
			if status != tt.status {
				t.Errorf("Got status %s, expected %s", status, tt.status)
			}

			if !slices.Equal(writeRefs(got), f.want) {
				t.Errorf("Got separable writes %v, expected %v", writeRefs(got), f.want)
			}

			again, _ := d.Analyze(f.x)
			if !slices.EqualFunc(got, again, equalWrite) {
				t.Error("Repeated analysis differs")
			}
		})
	}
}

func TestFirstWriteExcluded(t *testing.T) {
	t.Parallel()

	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s := g.Segment(p)
	g.Ref(p, s, x, w)
	g.Ref(p, s, x, r)

	for _, deadStores := range [...]bool{false, true} {
		if got, _ := New(testsource.IndexPath(p), deadStores).Analyze(x); len(got) != 0 {
			t.Errorf("Got separable writes %v, expected none", writeRefs(got))
		}
	}
}

func TestDeadStoreOption(t *testing.T) {
	t.Parallel()

	f := deadStores()

	got, _ := New(testsource.IndexPath(f.g.Root), true).Analyze(f.x)

	want := []*codepath.Reference{f.x.References[1], f.x.References[3]}
	if !slices.Equal(writeRefs(got), want) {
		t.Errorf("Got separable writes %v, expected %v", writeRefs(got), want)
	}

	if len(got) == 2 && len(got[1].Reads) != 0 {
		t.Errorf("Got reads %v for dead store", got[1].Reads)
	}
}

func TestEscaping(t *testing.T) {
	t.Parallel()

	f := sequential()
	f.x.Escapes = true

	got, status := New(testsource.IndexPath(f.g.Root), true).Analyze(f.x)
	if status != Escaping || len(got) != 0 {
		t.Errorf("Got %v (%s), expected no writes (%s)", writeRefs(got), status, Escaping)
	}
}

func TestAmbiguousRead(t *testing.T) {
	t.Parallel()

	// x = 0; if c { x = 1 } else { x = 2 }; log(x); x = 3; log(x)
	g := testsource.NewGraph()
	p := g.Root
	x := g.Declare(p, "x")
	s0, s1, s2, s3 := g.Segment(p), g.Segment(p), g.Segment(p), g.Segment(p)
	testsource.Link(s0, s1, s2)
	testsource.Link(s1, s3)
	testsource.Link(s2, s3)

	g.Ref(p, s0, x, w)
	g.Ref(p, s0, x, r)
	g.Ref(p, s1, x, w)
	g.Ref(p, s2, x, w)
	g.Ref(p, s3, x, r)
	w3 := g.Ref(p, s3, x, w)
	r3 := g.Ref(p, s3, x, r)

	got, _ := New(testsource.IndexPath(p), false).Analyze(x)
	if len(got) != 1 || got[0].Ref != w3 || !slices.Equal(got[0].Reads, []*codepath.Reference{r3}) {
		t.Errorf("Got separable writes %v, expected only the last write", writeRefs(got))
	}
}

func writeRefs(writes []Write) []*codepath.Reference {
	var refs []*codepath.Reference
	for _, w := range writes {
		refs = append(refs, w.Ref)
	}

	return refs
}

func equalWrite(a, b Write) bool {
	return a.Ref == b.Ref && slices.Equal(a.Reads, b.Reads)
}
