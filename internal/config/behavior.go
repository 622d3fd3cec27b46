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


package config

import "strings"

// Behavior is the set of enabled [Config] options. The zero value enables nothing.
type Behavior struct {
	mask Config
}

// NewBehavior returns a [Behavior] with the given options enabled.
func NewBehavior(opts ...Config) Behavior {
	var b Behavior
	for _, opt := range opts {
		b.mask |= opt
	}

	return b
}

// Set enables or disables opt.
func (b *Behavior) Set(opt Config, on bool) {
	if on {
		b.mask |= opt
	} else {
		b.mask &^= opt
	}
}

// Enabled reports whether every option in opt is enabled.
func (b Behavior) Enabled(opt Config) bool {
	return opt != 0 && b.mask&opt == opt
}

// Options returns the enabled options as a single mask.
func (b Behavior) Options() Config {
	return b.mask
}

// String lists the enabled options by flag name, separated by commas.
func (b Behavior) String() string {
	var names []string

	for _, opt := range [...]Config{IncludeGenerated, DeadStores, TrackErrors} {
		if b.mask&opt != 0 {
			names = append(names, opt.String())
		}
	}

	return strings.Join(names, ",")
}
