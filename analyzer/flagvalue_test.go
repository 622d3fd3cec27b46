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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/reuseguard/analyzer"
	"fillmore-labs.com/reuseguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Config
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.IncludeGenerated,
			args:    []string{"-dead-stores"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.DeadStores,
			args:    []string{"-dead-stores=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: config.TrackErrors,
			args:    []string{"-dead-stores=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBehavior(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.DeadStores
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "dead-stores", "report dead stores")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("DeadStores enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if other := tt.initial &^ value; other != 0 && !flags.Enabled(other) {
				t.Errorf("Flag %03b was cleared", other)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewBehaviorValue(&flags, config.TrackErrors), "errors", "check errors")

	if err := fs.Parse([]string{"-errors=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBehavior(config.IncludeGenerated)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.IncludeGenerated)
	fs.Var(fv, "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
