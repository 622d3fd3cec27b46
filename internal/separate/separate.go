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

// Package separate decides which writes of a variable start an independent value.
//
// A write is separable when every read it reaches is reached by no other
// write. The first write of a variable is never separable, and variables
// referenced from another variable scope or escaping the control-flow graph
// are not analyzed at all.
package separate

import (
	"cmp"
	"slices"

	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/defuse"
)

// Write is a separable write with the reads it reaches, in program order.
type Write struct {
	Ref   *codepath.Reference
	Reads []*codepath.Reference
}

//go:generate go tool stringer -type Status -linecomment

// Status describes why a variable was or was not analyzed.
type Status uint8

const (
	// Analyzed means all references could be attributed.
	Analyzed Status = iota // analyzed

	// CrossScope means some reference is in a different variable scope.
	CrossScope // cross-scope

	// Escaping means the variable may be observed outside the control-flow graph.
	Escaping // escaping
)

// Determiner classifies writes using an indexed graph.
type Determiner struct {
	graph      defuse.Graph
	deadStores bool
}

// New creates a [Determiner]. When deadStores is set, writes that reach no read are separable.
func New(g defuse.Graph, deadStores bool) Determiner {
	return Determiner{graph: g, deadStores: deadStores}
}

// Analyze returns the separable writes of v in program order.
func (d Determiner) Analyze(v *codepath.Variable) ([]Write, Status) {
	if v.Escapes {
		return nil, Escaping
	}

	for _, ref := range v.References {
		if ref.From != v.Scope {
			return nil, CrossScope
		}
	}

	order := make(map[*codepath.Reference]int, len(v.References))
	for i, ref := range v.References {
		order[ref] = i
	}

	type reached struct {
		write   *codepath.Reference
		reads   []*codepath.Reference
		located bool
	}

	prop := defuse.New(d.graph, v)

	var writes []reached

	readWrites := make(map[*codepath.Reference]int)

	for _, ref := range v.References {
		if !ref.IsWrite() {
			continue
		}

		reads, ok := prop.ReadsReachedBy(ref)
		for _, read := range reads {
			readWrites[read]++
		}

		writes = append(writes, reached{write: ref, reads: reads, located: ok})
	}

	var separable []Write

	// The first write is the initial binding
	for _, w := range writes[min(1, len(writes)):] {
		if !w.located || (len(w.reads) == 0 && !d.deadStores) {
			continue
		}

		if !unique(w.reads, readWrites) {
			continue
		}

		reads := sortedReads(w.reads, order)
		separable = append(separable, Write{Ref: w.write, Reads: reads})
	}

	return separable, Analyzed
}

// unique reports whether every read has exactly one writer.
func unique(reads []*codepath.Reference, readWrites map[*codepath.Reference]int) bool {
	for _, read := range reads {
		if readWrites[read] != 1 {
			return false
		}
	}

	return true
}

func sortedReads(reads []*codepath.Reference, order map[*codepath.Reference]int) []*codepath.Reference {
	sorted := slices.Clone(reads)
	slices.SortFunc(sorted, func(a, b *codepath.Reference) int { return cmp.Compare(order[a], order[b]) })

	return sorted
}
