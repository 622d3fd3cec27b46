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

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"fillmore-labs.com/reuseguard/internal/config"
)

// ErrConfigExists is returned when init would overwrite a configuration file.
var ErrConfigExists = errors.New("configuration file already exists")

func newInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Guides you through the check settings and writes them to ` + config.FileName + `.
Settings not asked for keep their defaults and can be edited in the file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkAbsent(path, force); err != nil {
				return err
			}

			cfg := config.DefaultFile()

			form, apply := configForm(&cfg)
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return fmt.Errorf("interactive prompt failed: %w", err)
			}

			if err := apply(); err != nil {
				return err
			}

			if err := cfg.Save(path); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

			return err
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", config.FileName, "configuration file to write")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")

	return cmd
}

func checkAbsent(path string, force bool) error {
	if force {
		return nil
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrConfigExists, path)

	case errors.Is(err, fs.ErrNotExist):
		return nil

	default:
		return err
	}
}

// configForm returns a form editing cfg. apply stores the values that need conversion.
func configForm(cfg *config.File) (form *huh.Form, apply func() error) {
	var formats []huh.Option[config.Format]
	for f := config.FormatText; f <= config.FormatMsgpack; f++ {
		formats = append(formats, huh.NewOption(f.String(), f))
	}

	jobs := strconv.Itoa(cfg.Jobs)

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[config.Format]().
				Title("Report format").
				Description("How findings are written to standard output").
				Options(formats...).
				Value(&cfg.Format),
			huh.NewSelect[config.Color]().
				Title("Colored output").
				Options(
					huh.NewOption("Automatic", config.ColorAuto),
					huh.NewOption("Always", config.ColorAlways),
					huh.NewOption("Never", config.ColorNever),
				).
				Value(&cfg.Color),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Report dead stores?").
				Description("Also report writes that are never read").
				Affirmative("Yes").
				Negative("No").
				Value(&cfg.DeadStores),
			huh.NewInput().
				Title("Parallel jobs").
				Placeholder(jobs).
				Value(&jobs).
				Validate(validateJobs),
		),
	)

	apply = func() error {
		n, err := strconv.Atoi(jobs)
		if err != nil {
			return err
		}

		cfg.Jobs = n

		return cfg.Validate()
	}

	return form, apply
}

func validateJobs(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if n < 1 {
		return config.ErrInvalidJobs
	}

	return nil
}
