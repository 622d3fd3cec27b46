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

// Package commands implements the jsreuse command line.
package commands

import "github.com/spf13/cobra"

// NewRootCmd returns the jsreuse command with all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jsreuse",
		Short: "jsreuse - Report reused variables in JavaScript",
		Long: `jsreuse finds variables that are assigned independent values over their
lifetime. Each reported write starts a value that no earlier write can reach,
so it could be a new variable.

Commands:
  check       Check JavaScript files
  init        Create a configuration file interactively
  version     Print version information

Use "jsreuse [command] --help" for more information about a command.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}
