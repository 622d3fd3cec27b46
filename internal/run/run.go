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

// Package run executes the reuseguard analysis pipeline on a package.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reuseguard/internal/astutil"
	"fillmore-labs.com/reuseguard/internal/codepath"
	"fillmore-labs.com/reuseguard/internal/config"
	"fillmore-labs.com/reuseguard/internal/driver"
	"fillmore-labs.com/reuseguard/internal/flow/graph"
	"fillmore-labs.com/reuseguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the reuseguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("reuseguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ReuseGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())
	trace.Log(ctx, "behavior", r.Behavior.String())

	builder := graph.New(p.TypesInfo, r.Behavior.Enabled(config.TrackErrors))

	driverOptions := driver.Options{
		Logger:     r.Logger,
		DeadStores: r.Behavior.Enabled(config.DeadStores),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "file "+file.Name.Name, astutil.ErrInvalidFile)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.NoLintDoc(file.Doc) {
			continue
		}

		d := driver.New(report.New(p, currentFile), driverOptions)

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if astutil.NoLintDoc(fun.Doc) {
				continue
			}

			path := builder.Build(ctx, fun)

			region := trace.StartRegion(ctx, "Analyze")
			err := codepath.Replay(path, d)
			region.End()

			if err != nil {
				astutil.InternalError(p, fun, "function "+fun.Name.Name, err)
				d.Reset()
			}
		}
	}

	return nil, nil
}
