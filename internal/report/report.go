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

// Package report converts reused variable findings into analysis diagnostics.
package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/reuseguard/internal/astutil"
	"fillmore-labs.com/reuseguard/internal/driver"
)

// Reporter emits the diagnostics of a single file. It implements [driver.Sink].
type Reporter struct {
	pass        *analysis.Pass
	currentFile astutil.CurrentFile
}

// New creates a [Reporter] for the file currentFile.
func New(p *analysis.Pass, currentFile astutil.CurrentFile) *Reporter {
	return &Reporter{pass: p, currentFile: currentFile}
}

// Report implements [driver.Sink].
func (r *Reporter) Report(d driver.Diagnostic) {
	if r.currentFile.NoLintComment(d.Pos) {
		return
	}

	related := make([]analysis.RelatedInformation, 0, len(d.Reads))
	for _, read := range d.Reads {
		related = append(related, analysis.RelatedInformation{
			Pos:     read.Ident.Pos,
			End:     read.Ident.End,
			Message: "Value read here",
		})
	}

	r.pass.Report(analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: string(d.Kind),
		Message:  Message(d),
		Related:  related,
	})
}

// Message returns the diagnostic text for d.
func Message(d driver.Diagnostic) string {
	if len(d.Reads) == 0 {
		return fmt.Sprintf("Reused variable '%s' is never read (rg:dead)", d.Variable.Name)
	}

	return fmt.Sprintf("Reused variable '%s' (rg:reuse)", d.Variable.Name)
}
