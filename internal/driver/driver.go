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

// Package driver consumes code path events and reports reused variables.
package driver

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/collect"
	"fillmore-labs.com/reuseguard/internal/refindex"
	"fillmore-labs.com/reuseguard/internal/separate"
)

// ErrMalformedEvents is returned when the event stream violates the nesting contract.
var ErrMalformedEvents = errors.New("malformed code path events")

// Kind classifies a [Diagnostic].
type Kind string

// ReusedVariable is the kind of diagnostics for separable writes.
const ReusedVariable Kind = "reused-variable"

// Diagnostic reports a write that can be treated as a new, independent variable.
type Diagnostic struct {
	Pos, End token.Pos
	Kind     Kind
	Variable *codepath.Variable
	Write    *codepath.Reference
	Reads    []*codepath.Reference // Reads owned by the write, in program order
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(d Diagnostic)

// Report implements [Sink].
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Options configure a [Driver].
type Options struct {
	// Logger receives debug output. nil discards.
	Logger *slog.Logger

	// DeadStores reports writes that reach no read.
	DeadStores bool
}

// Driver is a [codepath.Listener] running the analysis when a code path ends.
//
// A Driver serves one traversal at a time. After the root code path ends,
// it is ready for the next traversal. A malformed event stream fails the
// traversal and all further events until [Driver.Reset].
type Driver struct {
	sink   Sink
	logger *slog.Logger
	dead   bool

	index *refindex.Index
	paths collect.Stack[*pathContext]
	err   error
}

type pathContext struct {
	path      *codepath.Path
	depth     int // segment depth at path start
	variables []*codepath.Variable
	declared  map[*codepath.Variable]struct{}
}

var _ codepath.Listener = (*Driver)(nil)

// New creates a [Driver] reporting to sink.
func New(sink Sink, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Driver{
		sink:   sink,
		logger: logger,
		dead:   opts.DeadStores,
		index:  refindex.New(),
	}
}

// Reset discards all traversal state, including a previous failure.
func (d *Driver) Reset() {
	d.index.Reset()
	d.paths.Clear()
	d.err = nil
}

// Err returns the error that failed the current traversal, if any.
func (d *Driver) Err() error {
	return d.err
}

// CodePathStart implements [codepath.Listener].
func (d *Driver) CodePathStart(p *codepath.Path) error {
	if d.err != nil {
		return d.err
	}

	d.paths.Push(&pathContext{
		path:     p,
		depth:    d.index.Depth(),
		declared: make(map[*codepath.Variable]struct{}),
	})

	return nil
}

// SegmentStart implements [codepath.Listener].
func (d *Driver) SegmentStart(s *codepath.Segment) error {
	if _, err := d.current("segment start"); err != nil {
		return err
	}

	d.index.Enter(s)

	return nil
}

// SegmentEnd implements [codepath.Listener].
func (d *Driver) SegmentEnd(s *codepath.Segment) error {
	pc, err := d.current("segment end")
	if err != nil {
		return err
	}

	if d.index.Depth() <= pc.depth {
		return d.fail(fmt.Errorf("segment %d ends outside of its code path %d", s.ID, pc.path.ID))
	}

	if err := d.index.Exit(s); err != nil {
		return d.fail(err)
	}

	return nil
}

// IdentifierVisited implements [codepath.Listener].
func (d *Driver) IdentifierVisited(id *codepath.Ident) error {
	if _, err := d.current("identifier"); err != nil {
		return err
	}

	if !d.index.Visit(id) {
		d.logger.Debug("Identifier outside of segment", slog.String("name", id.Name), slog.Int("pos", int(id.Pos)))
	}

	return nil
}

// VariableDeclared implements [codepath.Listener].
func (d *Driver) VariableDeclared(v *codepath.Variable) error {
	pc, err := d.current("variable declaration")
	if err != nil {
		return err
	}

	if _, ok := pc.declared[v]; ok {
		return nil
	}

	pc.declared[v] = struct{}{}
	pc.variables = append(pc.variables, v)

	return nil
}

// CodePathEnd implements [codepath.Listener].
func (d *Driver) CodePathEnd(p *codepath.Path) error {
	pc, err := d.current("code path end")
	if err != nil {
		return err
	}

	switch {
	case pc.path != p:
		return d.fail(fmt.Errorf("code path %d ends while code path %d is active", p.ID, pc.path.ID))

	case d.index.Depth() != pc.depth:
		return d.fail(fmt.Errorf("code path %d ends with %d open segments", p.ID, d.index.Depth()-pc.depth))
	}

	d.paths.Pop()

	d.analyze(pc)

	if d.paths.Len() == 0 {
		d.index.Reset() // root code path complete
	}

	return nil
}

func (d *Driver) analyze(pc *pathContext) {
	det := separate.New(d.index, d.dead)

	for _, v := range pc.variables {
		writes, status := det.Analyze(v)
		if status != separate.Analyzed {
			d.logger.LogAttrs(context.Background(), slog.LevelDebug, "Variable not analyzable",
				slog.String("name", v.Name), slog.Int("path", pc.path.ID), slog.String("status", status.String()))

			continue
		}

		for _, w := range writes {
			d.sink.Report(Diagnostic{
				Pos:      w.Ref.Ident.Pos,
				End:      w.Ref.Ident.End,
				Kind:     ReusedVariable,
				Variable: v,
				Write:    w.Ref,
				Reads:    w.Reads,
			})
		}
	}
}

func (d *Driver) current(event string) (*pathContext, error) {
	if d.err != nil {
		return nil, d.err
	}

	pc, ok := d.paths.Peek()
	if !ok {
		return nil, d.fail(fmt.Errorf("%s outside of a code path", event))
	}

	return pc, nil
}

func (d *Driver) fail(err error) error {
	if !errors.Is(err, ErrMalformedEvents) {
		err = fmt.Errorf("%w: %w", ErrMalformedEvents, err)
	}

	d.err = err

	return err
}
