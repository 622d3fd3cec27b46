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

// Package config holds analyzer flags and the command line configuration file.
package config

// Config represents configuration options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// DeadStores reports reassignments whose value is never read.
	DeadStores

	// TrackErrors includes variables of type error.
	TrackErrors
)

// String returns the analyzer flag name of a single option.
func (c Config) String() string {
	switch c {
	case IncludeGenerated:
		return "generated"

	case DeadStores:
		return "dead-stores"

	case TrackErrors:
		return "errors"

	default:
		return "unknown"
	}
}
