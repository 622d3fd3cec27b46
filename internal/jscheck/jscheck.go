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

// Package jscheck reports reused variables in JavaScript source.
package jscheck

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/driver"
	"fillmore-labs.com/reuseguard/internal/jshost"
)

// Options configure [Source].
type Options struct {
	// IgnoreDeadStores suppresses writes that are never read.
	IgnoreDeadStores bool

	// Logger receives debug output. nil discards.
	Logger *slog.Logger
}

// Location is a position in a source file.
type Location struct {
	Line   int `json:"line"   yaml:"line"   msgpack:"line"`
	Column int `json:"column" yaml:"column" msgpack:"column"`
}

// Finding is a write that can be replaced by a new variable.
type Finding struct {
	Variable string      `json:"variable"        yaml:"variable"        msgpack:"variable"`
	Kind     driver.Kind `json:"kind"            yaml:"kind"            msgpack:"kind"`
	Start    Location    `json:"start"           yaml:"start"           msgpack:"start"`
	End      Location    `json:"end"             yaml:"end"             msgpack:"end"`
	Reads    []Location  `json:"reads,omitempty" yaml:"reads,omitempty" msgpack:"reads,omitempty"`
}

// Message describes the finding.
func (f Finding) Message() string {
	if len(f.Reads) == 0 {
		return fmt.Sprintf("Reused variable '%s' is never read", f.Variable)
	}

	return fmt.Sprintf("Reused variable '%s'", f.Variable)
}

// Source analyzes the JavaScript program src and returns its findings in source order.
// The file is added to fset under name.
func Source(ctx context.Context, fset *token.FileSet, name string, src []byte, opts Options) ([]Finding, error) {
	ctx, task := trace.NewTask(ctx, "JSCheck")
	defer task.End()

	file := fset.AddFile(name, -1, len(src))
	file.SetLinesForContent(src)

	p, err := jshost.Build(ctx, file, src)
	if err != nil {
		return nil, err
	}

	var findings []Finding

	sink := driver.SinkFunc(func(d driver.Diagnostic) {
		findings = append(findings, newFinding(file, d))
	})

	region := trace.StartRegion(ctx, "Analyze")
	err = codepath.Replay(p, driver.New(sink, driver.Options{Logger: opts.Logger, DeadStores: !opts.IgnoreDeadStores}))
	region.End()

	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	slices.SortFunc(findings, func(a, b Finding) int {
		return cmp.Or(cmp.Compare(a.Start.Line, b.Start.Line), cmp.Compare(a.Start.Column, b.Start.Column))
	})

	return findings, nil
}

func newFinding(file *token.File, d driver.Diagnostic) Finding {
	f := Finding{
		Variable: d.Variable.Name,
		Kind:     d.Kind,
		Start:    location(file, d.Pos),
		End:      location(file, d.End),
	}

	for _, r := range d.Reads {
		f.Reads = append(f.Reads, location(file, r.Ident.Pos))
	}

	return f
}

func location(file *token.File, pos token.Pos) Location {
	p := file.Position(pos)
	return Location{Line: p.Line, Column: p.Column}
}
