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

// Package analyzer implements the reuseguard static analysis pass.
//
// # Overview
//
// ReuseGuard detects local variables that are reassigned with a value unrelated
// to their previous one. A reassignment is reported when every read it reaches
// sees only this assignment, so the variable could be split into two.
//
// # Example
//
//	func process() {
//	    n := count("a")
//	    fmt.Println(n)
//	    n = count("b") // Reused variable 'n'
//	    fmt.Println(n)
//	}
//
// Variables are not reported when they are captured by a function literal,
// when their address is taken, or when a read can see more than one
// assignment, as in loops that accumulate:
//
//	sum := 0
//	for _, v := range values {
//	    sum = sum + v
//	}
//
// # Flags
//
//   - -generated: check generated files
//   - -dead-stores: report reassignments that are never read, enabled by default
//   - -errors: check variables of type error, which are skipped by default
//
// A //nolint:reuseguard comment on the line of the assignment or above a
// function declaration suppresses diagnostics.
package analyzer
