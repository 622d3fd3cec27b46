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


// Package astutil provides file level helpers for reporting analysis diagnostics.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// linterName is matched against nolint directives.
const linterName = "reuseguard"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	handle    *token.File
	nolint    map[int]struct{}
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
//
// Lines carrying a //nolint:reuseguard comment are collected up front, so
// lookups during reporting do not rescan the comment list.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	var nolint map[int]struct{}
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !CommentHasNoLint(comment) {
				continue
			}

			if nolint == nil {
				nolint = make(map[int]struct{})
			}

			nolint[handle.PositionFor(comment.Pos(), false).Line] = struct{}{}
		}
	}

	return CurrentFile{handle: handle, nolint: nolint, generated: ast.IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLintComment checks if the line of pos carries a //nolint:reuseguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.nolint == nil || !pos.IsValid() {
		return false
	}

	_, ok := c.nolint[c.handle.PositionFor(pos, false).Line]

	return ok
}

// NoLintDoc reports whether the last line of a declaration's doc comment is a nolint directive.
func NoLintDoc(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:reuseguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
