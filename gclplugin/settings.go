// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import reuseguard "fillmore-labs.com/reuseguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// DeadStores reports reassignments that are never read.
	DeadStores *bool `json:"dead-stores,omitzero"`
	// Errors checks variables of type error.
	Errors *bool `json:"errors,omitzero"`
}

// Options converts [Settings] into a list of [reuseguard.Option] for the reuseguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []reuseguard.Option {
	var opts []reuseguard.Option

	opts = appendOption(opts, s.DeadStores, reuseguard.WithDeadStores)
	opts = appendOption(opts, s.Errors, reuseguard.WithErrors)

	return opts
}

// appendOption appends a non-nil setting to a [reuseguard.Option] list.
func appendOption[T any](opts []reuseguard.Option, value *T, constructor func(T) reuseguard.Option) []reuseguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
