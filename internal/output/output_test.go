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

package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/reuseguard/internal/config"
	"fillmore-labs.com/reuseguard/internal/driver"
	"fillmore-labs.com/reuseguard/internal/jscheck"
	. "fillmore-labs.com/reuseguard/internal/output"
)

func report() *Report {
	var r Report

	r.Add("a.js", []jscheck.Finding{{
		Variable: "x",
		Kind:     driver.ReusedVariable,
		Start:    jscheck.Location{Line: 3, Column: 1},
		End:      jscheck.Location{Line: 3, Column: 2},
		Reads:    []jscheck.Location{{Line: 4, Column: 5}},
	}}, nil)
	r.Add("b.js", nil, nil)
	r.Add("c.js", nil, errors.New("syntax error at 1:4"))

	return &r
}

func TestAdd(t *testing.T) {
	t.Parallel()

	r := report()

	assert.Len(t, r.Files, 2)
	assert.Equal(t, 1, r.Findings)
	assert.Equal(t, 1, r.Errors)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report(), config.FormatText, false))

	want := "a.js:3:1: Reused variable 'x'\nc.js: syntax error at 1:4\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report(), config.FormatText, true))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Reused variable 'x'")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report(), config.FormatJSON, true))

	const want = `{
  "files": [
    {
      "path": "a.js",
      "findings": [
        {
          "variable": "x",
          "kind": "reused-variable",
          "start": {"line": 3, "column": 1},
          "end": {"line": 3, "column": 2},
          "reads": [{"line": 4, "column": 5}]
        }
      ]
    },
    {"path": "c.js", "error": "syntax error at 1:4"}
  ],
  "findings": 1,
  "errors": 1
}`
	assert.JSONEq(t, want, buf.String())
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report(), config.FormatYAML, false))

	var got struct {
		Files []struct {
			Path  string `yaml:"path"`
			Error string `yaml:"error"`
		} `yaml:"files"`
		Findings int `yaml:"findings"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 1, got.Findings)
	require.Len(t, got.Files, 2)
	assert.Equal(t, "c.js", got.Files[1].Path)
	assert.Equal(t, "syntax error at 1:4", got.Files[1].Error)
}

func TestWriteMsgpack(t *testing.T) {
	t.Parallel()

	want := report()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, want, config.FormatMsgpack, false))

	var got Report
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, &got)
}

func TestWriteUnknown(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, report(), config.Format(99), false)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestColored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, Colored(config.ColorAlways, &buf))
	assert.False(t, Colored(config.ColorNever, &buf))
	assert.False(t, Colored(config.ColorAuto, &buf), "a buffer is not a terminal")
}
