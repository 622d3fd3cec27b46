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

// Jsreuse reports variables in JavaScript files that are reused for
// independent values.
//
// Usage:
//
//	jsreuse check [flags] [files|-]
//	jsreuse init
//	jsreuse version
//
// Directories are searched recursively for files with the configured
// extensions. The exit status is 1 when reused variables are found and 2
// on errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"fillmore-labs.com/reuseguard/cmd/jsreuse/commands"
)

func main() {
	err := commands.NewRootCmd().Execute()

	switch {
	case err == nil:

	case errors.Is(err, commands.ErrFindings):
		os.Exit(1)

	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
