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


package astutil

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"
)

// ErrInvalidFile is reported for files the file set cannot locate.
var ErrInvalidFile = errors.New("file without valid position info")

// CategoryInternal marks diagnostics caused by analyzer failures.
const CategoryInternal = "internal"

// InternalError reports a failure to analyze the node at rng, naming the
// enclosing declaration. The user's code is not at fault.
func InternalError(p *analysis.Pass, rng analysis.Range, name string, err error) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: CategoryInternal,
		Message:  fmt.Sprintf("Internal Error in %s: %v", name, err),
	})
}
