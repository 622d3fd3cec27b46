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

package graph_test

import (
	"fmt"
	"go/token"
	"slices"
	"testing"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/driver"
	. "fillmore-labs.com/reuseguard/internal/flow/graph"
	"fillmore-labs.com/reuseguard/internal/testsource"
)

func build(t *testing.T, src string, errors bool) (*token.FileSet, *codepath.Path) {
	t.Helper()

	f := testsource.Function(t, src)

	return f.Fset, New(f.Info, errors).Build(t.Context(), f.Func)
}

func TestReused(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		errors     bool
		deadStores bool
		want       []string
	}{
		{
			name: "Straight",
			src: `x := 1
println(x)
x = 2
println(x)`,
			want: []string{"x:3"},
		},
		{
			name: "Loop",
			src: `x := 0
for x < 10 {
	x = x + 1
}`,
		},
		{
			name: "Branch",
			src: `x := 1
if x > 0 {
	x = 2
}
println(x)`,
		},
		{
			name: "Captured",
			src: `x := 1
println(x)
x = 2
func() { println(x) }()`,
		},
		{
			name: "AddressTaken",
			src: `x := 1
println(x)
p := &x
x = 2
println(x, p)`,
		},
		{
			name: "RangeMaySkip",
			src: `x := 0
println(x)
for range 3 {
	x = 1
	println(x)
}
println(x)`,
		},
		{
			name: "SwitchCase",
			src: `x := 1
switch x {
case 1:
	x = 2
	println(x)
}`,
			want: []string{"x:4"},
		},
		{
			name: "IncDec",
			src: `x := 1
println(x)
x++
println(x)`,
			want: []string{"x:3"},
		},
		{
			name: "Declared",
			src: `var x int
x = 1
println(x)
x = 2
println(x)`,
			want: []string{"x:4"},
		},
		{
			name: "ErrorsIgnored",
			src: `err := error(nil)
println(err)
err = error(nil)
println(err)`,
		},
		{
			name: "ErrorsTracked",
			src: `err := error(nil)
println(err)
err = error(nil)
println(err)`,
			errors: true,
			want:   []string{"err:3"},
		},
		{
			name: "DeadStoreIgnored",
			src: `x := 1
println(x)
x = 2`,
		},
		{
			name: "DeadStore",
			src: `x := 1
println(x)
x = 2`,
			deadStores: true,
			want:       []string{"x:3"},
		},
		{
			name: "AfterReturn",
			src: `x := 1
println(x)
if x > 0 {
	x = 2
	println(x)
	return
}
println(x)`,
			want: []string{"x:4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, p := build(t, tt.src, tt.errors)

			var got []string
			sink := driver.SinkFunc(func(d driver.Diagnostic) {
				line := fset.Position(d.Write.Ident.Pos).Line - testsource.HeaderLines
				got = append(got, fmt.Sprintf("%s:%d", d.Variable.Name, line))
			})

			d := driver.New(sink, driver.Options{DeadStores: tt.deadStores})
			if err := codepath.Replay(p, d); err != nil {
				t.Fatalf("Replay failed: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		vars     []string
		escaping []string
		children int
	}{
		{
			name:     "Blank",
			src:      "_, x := 1, 2\nprintln(x)",
			vars:     []string{"x"},
			children: 0,
		},
		{
			name:     "Array",
			src:      "var a [2]int\ns := a[:]\nprintln(s)",
			vars:     []string{"a", "s"},
			escaping: []string{"a"},
		},
		{
			name:     "Field",
			src:      "var v struct{ f int }\np := &v.f\nprintln(p)",
			vars:     []string{"v", "p"},
			escaping: []string{"v"},
		},
		{
			name:     "Closure",
			src:      "x := 1\nf := func() int { y := x; return y }\nprintln(f())",
			vars:     []string{"x", "f"},
			children: 1,
		},
		{
			name: "RangeAndTypeSwitch",
			src:  "for i := range 3 {\n\tprintln(i)\n}\nswitch v := any(1).(type) {\ncase int:\n\tprintln(v)\n}",
		},
		{
			name: "ForInit",
			src:  "for i := 0; i < 3; i++ {\n\tprintln(i)\n}",
			vars: []string{"i"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, p := build(t, tt.src, false)

			var vars, escaping []string
			for _, v := range p.Variables {
				vars = append(vars, v.Name)
				if v.Escapes {
					escaping = append(escaping, v.Name)
				}
			}

			if !slices.Equal(vars, tt.vars) {
				t.Errorf("Got variables %v, expected %v", vars, tt.vars)
			}

			if !slices.Equal(escaping, tt.escaping) {
				t.Errorf("Got escaping %v, expected %v", escaping, tt.escaping)
			}

			if got := len(p.Children); got != tt.children {
				t.Errorf("Got %d nested paths, expected %d", got, tt.children)
			}
		})
	}
}

func TestReferenceOrder(t *testing.T) {
	t.Parallel()

	_, p := build(t, "x := 1\nx = x + 1\nx += 2\nprintln(x)", false)

	if len(p.Variables) != 1 {
		t.Fatalf("Got %d variables, expected 1", len(p.Variables))
	}

	var got []codepath.Access
	for _, r := range p.Variables[0].References {
		got = append(got, r.Access)
	}

	want := []codepath.Access{codepath.Write, codepath.Read, codepath.Write, codepath.ReadWrite, codepath.Read}
	if !slices.Equal(got, want) {
		t.Errorf("Got %v, expected %v", got, want)
	}
}

func TestEntrySegment(t *testing.T) {
	t.Parallel()

	_, p := build(t, "", false)

	if p.Entry() == nil {
		t.Fatal("Expected an entry segment for an empty body")
	}
}
