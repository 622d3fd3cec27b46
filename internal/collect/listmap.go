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

package collect

// ListMap maps keys to ordered lists of values. The zero value is ready to use.
type ListMap[K comparable, V any] struct {
	m map[K][]V
}

// Add appends value to the list for key, creating the list on first insert.
// It returns the new length of the list.
func (l *ListMap[K, V]) Add(key K, value V) int {
	if l.m == nil {
		l.m = make(map[K][]V)
	}

	values := append(l.m[key], value)
	l.m[key] = values

	return len(values)
}

// Get returns the list for key, or nil.
func (l *ListMap[K, V]) Get(key K) []V {
	return l.m[key]
}

// Len returns the number of keys.
func (l *ListMap[K, V]) Len() int {
	return len(l.m)
}

// Clear removes all keys.
func (l *ListMap[K, V]) Clear() {
	clear(l.m)
}
