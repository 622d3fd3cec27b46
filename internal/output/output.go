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

// Package output renders the results of checking JavaScript files.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora/v4"
	"github.com/mattn/go-isatty"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/reuseguard/internal/config"
	"fillmore-labs.com/reuseguard/internal/jscheck"
)

// Report is the result of one check run.
type Report struct {
	Files    []File `json:"files"    yaml:"files"    msgpack:"files"`
	Findings int    `json:"findings" yaml:"findings" msgpack:"findings"`
	Errors   int    `json:"errors"   yaml:"errors"   msgpack:"errors"`
}

// File is the result of checking a single file.
type File struct {
	Path     string            `json:"path"               yaml:"path"               msgpack:"path"`
	Findings []jscheck.Finding `json:"findings,omitempty" yaml:"findings,omitempty" msgpack:"findings,omitempty"`
	Error    string            `json:"error,omitempty"    yaml:"error,omitempty"    msgpack:"error,omitempty"`
}

// Add records the result of checking path. Files without findings or error are omitted.
func (r *Report) Add(path string, findings []jscheck.Finding, err error) {
	if len(findings) == 0 && err == nil {
		return
	}

	f := File{Path: path, Findings: findings}
	if err != nil {
		f.Error = err.Error()
		r.Errors++
	}

	r.Findings += len(findings)
	r.Files = append(r.Files, f)
}

// Write renders r to w in the given format. Only the text format uses color.
func Write(w io.Writer, r *Report, format config.Format, color bool) error {
	switch format {
	case config.FormatText:
		return writeText(w, r, color)

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()

	case config.FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(r)

	default:
		return fmt.Errorf("%w: %v", config.ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, r *Report, color bool) error {
	au := aurora.New(aurora.WithColors(color))

	for _, f := range r.Files {
		if f.Error != "" {
			if _, err := fmt.Fprintf(w, "%s: %s\n", au.Bold(f.Path), au.Colorize(f.Error, aurora.RedFg|aurora.BrightFg)); err != nil {
				return err
			}

			continue
		}

		for _, finding := range f.Findings {
			pos := fmt.Sprintf("%s:%d:%d", f.Path, finding.Start.Line, finding.Start.Column)
			if _, err := fmt.Fprintf(w, "%s: %s\n", au.Bold(pos), au.Yellow(finding.Message())); err != nil {
				return err
			}
		}
	}

	return nil
}

// Colored reports whether text written to w should be colored.
// Automatic detection honors NO_COLOR and requires a terminal.
func Colored(c config.Color, w io.Writer) bool {
	switch c {
	case config.ColorAlways:
		return true

	case config.ColorNever:
		return false

	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}

		f, ok := w.(interface{ Fd() uintptr })

		return ok && isatty.IsTerminal(f.Fd())
	}
}
