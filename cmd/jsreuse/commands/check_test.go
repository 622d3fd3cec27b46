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

package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/reuseguard/cmd/jsreuse/commands"
	"fillmore-labs.com/reuseguard/internal/config"
)

const reuse = `let x = 0;
log(x);
x = 1;
log(x);
`

const clean = `let x = 0;
if (c) x = 1;
log(x);
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), err
}

func project(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"reuse.js":              reuse,
		"clean.mjs":             clean,
		"notes.txt":             reuse,
		"node_modules/dep.js":   reuse,
		"lib/nested/reuse2.cjs": reuse,
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func TestCheckText(t *testing.T) {
	t.Parallel()

	dir := project(t)

	out, err := execute(t, "", "check", "--color", "never", dir)
	require.ErrorIs(t, err, ErrFindings)

	want := filepath.Join(dir, "lib", "nested", "reuse2.cjs") + ":3:1: Reused variable 'x'\n" +
		filepath.Join(dir, "reuse.js") + ":3:1: Reused variable 'x'\n"
	assert.Equal(t, want, out)
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := project(t)

	out, err := execute(t, "", "check", "--format", "json", "--jobs", "1", filepath.Join(dir, "reuse.js"), filepath.Join(dir, "clean.mjs"))
	require.ErrorIs(t, err, ErrFindings)

	var report struct {
		Files []struct {
			Path string `json:"path"`
		} `json:"files"`
		Findings int `json:"findings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 1, report.Findings)
	require.Len(t, report.Files, 1)
	assert.Equal(t, filepath.Join(dir, "reuse.js"), report.Files[0].Path)
}

func TestCheckStdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, reuse, "check", "--color", "never", "-")
	require.ErrorIs(t, err, ErrFindings)
	assert.Equal(t, "<stdin>:3:1: Reused variable 'x'\n", out)
}

func TestCheckExitZero(t *testing.T) {
	t.Parallel()

	out, err := execute(t, reuse, "check", "--exit-zero", "--color", "never", "-")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	out, err := execute(t, clean, "check", "-")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckDeadStores(t *testing.T) {
	t.Parallel()

	const src = `let x = 0;
log(x);
x = 1;
`

	out, err := execute(t, src, "check", "--color", "never", "-")
	require.ErrorIs(t, err, ErrFindings)
	assert.Equal(t, "<stdin>:3:1: Reused variable 'x' is never read\n", out)

	out, err = execute(t, src, "check", "--dead-stores=false", "-")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckUnreadable(t *testing.T) {
	t.Parallel()

	dir := project(t)
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.js"), filepath.Join(dir, "broken.js")))

	out, err := execute(t, "", "check", "--format", "json", dir)
	require.ErrorIs(t, err, ErrUnchecked)

	var report struct {
		Files []struct {
			Path  string `json:"path"`
			Error string `json:"error"`
		} `json:"files"`
		Findings int `json:"findings"`
		Errors   int `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 2, report.Findings)
	assert.Equal(t, 1, report.Errors)

	var broken []string
	for _, f := range report.Files {
		if f.Error != "" {
			broken = append(broken, f.Path)
		}
	}
	assert.Equal(t, []string{filepath.Join(dir, "broken.js")}, broken)
}

func TestCheckJobsDefault(t *testing.T) {
	t.Parallel()

	cmd, _, err := NewRootCmd().Find([]string{"check"})
	require.NoError(t, err)

	jobs := cmd.Flags().Lookup("jobs")
	require.NotNil(t, jobs)
	assert.Equal(t, strconv.Itoa(runtime.GOMAXPROCS(0)), jobs.DefValue)
}

func TestCheckSyntaxError(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "if (x {", "check", "--color", "never", "-")
	require.ErrorIs(t, err, ErrUnchecked)
	assert.Contains(t, out, "<stdin>: syntax error")
}

func TestCheckInvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"Format", []string{"check", "--format", "xml", "-"}},
		{"Color", []string{"check", "--color", "rainbow", "-"}},
		{"Jobs", []string{"check", "--jobs", "0", "-"}},
		{"LogLevel", []string{"check", "--log-level", "loud", "-"}},
		{"Missing", []string{"check", "does-not-exist.js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrFindings)
		})
	}
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.DefaultFile()
	cfg.Format = config.FormatYAML
	require.NoError(t, cfg.Save(path))

	out, err := execute(t, reuse, "check", "--config", path, "-")
	require.ErrorIs(t, err, ErrFindings)
	assert.Contains(t, out, "variable: x")

	out, err = execute(t, reuse, "check", "--config", path, "--format", "text", "--color", "never", "-")
	require.ErrorIs(t, err, ErrFindings)
	assert.Equal(t, "<stdin>:3:1: Reused variable 'x'\n", out)
}

func TestInitExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := execute(t, "", "init", "--output", path)
	require.ErrorIs(t, err, ErrConfigExists)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "jsreuse "), out)
}
