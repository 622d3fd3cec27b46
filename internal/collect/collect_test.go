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

package collect_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/reuseguard/internal/collect"
)

func TestStack(t *testing.T) {
	t.Parallel()

	var s Stack[int]

	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack succeeded")
	}

	for i := range 3 {
		s.Push(i)
	}

	if got, want := s.Len(), 3; got != want {
		t.Errorf("Got length %d, expected %d", got, want)
	}

	if top, ok := s.Peek(); !ok || top != 2 {
		t.Errorf("Got top %d (%t), expected 2", top, ok)
	}

	for want := 2; want >= 0; want-- {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Errorf("Got %d (%t), expected %d", got, ok, want)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack succeeded")
	}

	s.Push(7)
	s.Clear()

	if s.Len() != 0 {
		t.Error("Stack not empty after Clear")
	}
}

func TestListMap(t *testing.T) {
	t.Parallel()

	var l ListMap[string, int]

	if got := l.Get("a"); got != nil {
		t.Errorf("Got %v for missing key, expected nil", got)
	}

	tests := []struct {
		key   string
		value int
		want  int
	}{
		{"a", 1, 1},
		{"b", 2, 1},
		{"a", 3, 2},
	}

	for _, tt := range tests {
		if got := l.Add(tt.key, tt.value); got != tt.want {
			t.Errorf("Add(%q, %d) = %d, expected %d", tt.key, tt.value, got, tt.want)
		}
	}

	if got, want := l.Get("a"), []int{1, 3}; !slices.Equal(got, want) {
		t.Errorf("Got %v, expected %v", got, want)
	}

	if got, want := l.Len(), 2; got != want {
		t.Errorf("Got %d keys, expected %d", got, want)
	}

	l.Clear()

	if l.Len() != 0 {
		t.Error("ListMap not empty after Clear")
	}
}
