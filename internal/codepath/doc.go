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

// Package codepath models control-flow graphs as code paths of segments
// and the identifier references recorded in them.
//
// A [Path] is the graph of one function or module body. It is made of
// [Segment]s, basic blocks holding the [Ident]s visited in evaluation order,
// linked to their successors. Paths of nested functions are children of the
// enclosing path.
//
// Hosts build paths from source and turn them into the event stream consumed
// by a [Listener] with [Replay].
package codepath
