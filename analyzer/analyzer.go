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


package analyzer

import (
	"context"
	"log/slog"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/reuseguard/internal/run"
)

const (
	name = "reuseguard"
	doc  = `reuseguard detects reassigned variables that could be separate variables

A reassignment is reported when every read it reaches sees no other
assignment, so the new value could be bound to a fresh variable.`
	url = "https://pkg.go.dev/fillmore-labs.com/reuseguard"
)

// New returns a reuseguard analyzer configured by opts.
//
// Options are applied in order, later ones win. Command line flags registered
// on the returned analyzer start out with the configured values.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	if r.Logger != nil {
		r.Logger.LogAttrs(context.Background(), slog.LevelDebug, "New analyzer", Options(opts).LogAttr())
	}

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is the reuseguard analyzer with default settings.
var Analyzer = New()
