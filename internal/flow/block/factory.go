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


package block

import "iter"

// Factory allocates [Block]s in fixed-size chunks, so blocks of one code path
// stay close in memory and are released together.
type Factory struct {
	chunks []*[chunkSize]Block
	used   int // blocks used in the last chunk

	// Handlers are attached to every new block.
	Handlers []*Block
}

const chunkSize = 127

// New returns a new, empty [Block] carrying the current handlers.
func (f *Factory) New() *Block {
	if len(f.chunks) == 0 || f.used == chunkSize {
		f.chunks = append(f.chunks, new([chunkSize]Block))
		f.used = 0
	}

	b := &f.chunks[len(f.chunks)-1][f.used]
	f.used++

	b.Handlers = f.Handlers

	return b
}

// Len returns the number of blocks created.
func (f *Factory) Len() int {
	if len(f.chunks) == 0 {
		return 0
	}

	return (len(f.chunks)-1)*chunkSize + f.used
}

// All yields every block in creation order.
func (f *Factory) All() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for i, chunk := range f.chunks {
			n := chunkSize
			if i == len(f.chunks)-1 {
				n = f.used
			}

			for j := range n {
				if !yield(&chunk[j]) {
					return
				}
			}
		}
	}
}
