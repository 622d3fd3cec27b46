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

package codepath

//go:generate go tool stringer -type Access -linecomment

// Access classifies a [Reference] as a read, a write or both.
type Access uint8

const (
	// Read marks a reference that observes the current value.
	Read Access = 1 << iota // read

	// Write marks a reference that stores a new value.
	Write // write

	// ReadWrite marks a compound assignment like "x += 1".
	ReadWrite = Read | Write // read-write
)

// IsRead reports whether the access observes the current value.
func (a Access) IsRead() bool { return a&Read != 0 }

// IsWrite reports whether the access stores a new value.
func (a Access) IsWrite() bool { return a&Write != 0 }
