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

import (
	"fmt"
	"go/token"
)

// Jump is the kind of an explicit transfer of control.
type Jump uint8

const (
	// Break leaves the innermost loop, switch or select, or the labeled statement.
	Break Jump = iota
	// Continue starts the next iteration of a loop.
	Continue
	// Fallthrough enters the next switch clause body.
	Fallthrough
	// Goto jumps to a labeled statement.
	Goto
)

// JumpOf returns the [Jump] of a Go branch statement token.
func JumpOf(tok token.Token) Jump {
	switch tok {
	case token.BREAK:
		return Break

	case token.CONTINUE:
		return Continue

	case token.FALLTHROUGH:
		return Fallthrough

	case token.GOTO:
		return Goto

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

// Label holds the jump targets of a labeled statement.
//
// Stmt is known when the label is first seen. The break and continue
// targets are filled in when the statement itself is built, so a label
// of a plain statement has no continue target.
type Label struct {
	Stmt  *Block
	exits [Fallthrough]*Block
}

// NewLabel returns a [Label] for the statement starting at stmt.
func NewLabel(stmt *Block) *Label {
	return &Label{Stmt: stmt}
}

// Set records the target of a labeled break or continue.
func (l *Label) Set(j Jump, target *Block) {
	l.exits[j] = target
}

// Target returns where a jump naming this label goes, or nil if unknown.
func (l *Label) Target(j Jump) *Block {
	switch j {
	case Break, Continue:
		return l.exits[j]

	case Goto:
		return l.Stmt

	default:
		return nil
	}
}

// Targets tracks the innermost targets of unlabeled break, continue and fallthrough.
type Targets struct {
	current [Goto]*Block
}

// Enter makes target the innermost destination of j and returns the previous
// one for [Targets.Leave]. A non-nil label receives the same target.
func (t *Targets) Enter(j Jump, target *Block, label *Label) (saved *Block) {
	if label != nil && j != Fallthrough {
		label.Set(j, target)
	}

	saved, t.current[j] = t.current[j], target

	return saved
}

// Leave restores the destination of j saved by [Targets.Enter].
func (t *Targets) Leave(j Jump, saved *Block) {
	t.current[j] = saved
}

// Target returns the innermost destination of an unlabeled j, or nil.
func (t *Targets) Target(j Jump) *Block {
	if j >= Goto {
		return nil
	}

	return t.current[j]
}
