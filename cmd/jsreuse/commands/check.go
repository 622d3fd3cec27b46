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
	"context"
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/reuseguard/internal/config"
	"fillmore-labs.com/reuseguard/internal/jscheck"
	"fillmore-labs.com/reuseguard/internal/output"
)

// ErrFindings is returned when reused variables were found.
var ErrFindings = errors.New("reused variables found")

// ErrUnchecked is returned when some files could not be checked.
var ErrUnchecked = errors.New("files could not be checked")

// stdinName is the file name reported for standard input.
const stdinName = "<stdin>"

type checkFlags struct {
	config     string
	format     config.Format
	color      config.Color
	deadStores bool
	jobs       int
	exitZero   bool
	logLevel   string
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [files|-]",
		Short: "Check JavaScript files",
		Long: `Check JavaScript files for reused variables.

Directories are searched recursively, "-" reads standard input. Without
arguments the current directory is checked. Settings are read from
` + config.FileName + `, REUSEGUARD_* environment variables and flags, later
sources taking precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			c := checker{
				cfg:    cfg,
				stdin:  cmd.InOrStdin(),
				stdout: cmd.OutOrStdout(),
				logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel})),
			}

			if err := c.run(cmd.Context(), args); err != nil {
				if errors.Is(err, ErrFindings) && flags.exitZero {
					return nil
				}

				return err
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.config, "config", "", "configuration file (default "+config.FileName+" if present)")
	f.Var(&flags.format, "format", "output format: "+strings.Join(config.Formats(), ", "))
	f.Var(&flags.color, "color", "colorize output: auto, always, never")
	f.BoolVar(&flags.deadStores, "dead-stores", true, "report writes that are never read")
	f.IntVarP(&flags.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files checked in parallel")
	f.BoolVar(&flags.exitZero, "exit-zero", false, "exit with status 0 when reused variables are found")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

// load merges the configuration file, the environment and the flags set on the command line.
func (f *checkFlags) load(cmd *cobra.Command) (config.File, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.File{}, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.File{}, err
	}

	set := cmd.Flags()

	if set.Changed("format") {
		cfg.Format = f.format
	}

	if set.Changed("color") {
		cfg.Color = f.color
	}

	if set.Changed("dead-stores") {
		cfg.DeadStores = f.deadStores
	}

	if set.Changed("jobs") {
		cfg.Jobs = f.jobs
	}

	if set.Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.logLevel)); err != nil {
			return config.File{}, fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
		}
	}

	return cfg, cfg.Validate()
}

// checker runs one check over a set of files.
type checker struct {
	cfg    config.File
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

type result struct {
	findings []jscheck.Finding
	err      error
}

func (c *checker) run(ctx context.Context, args []string) error {
	files, err := c.collect(args)
	if err != nil {
		return err
	}

	var stdin []byte
	if slices.Contains(files, "-") {
		if stdin, err = io.ReadAll(c.stdin); err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
	}

	fset := token.NewFileSet()
	opts := jscheck.Options{IgnoreDeadStores: !c.cfg.DeadStores, Logger: c.logger}
	results := make([]result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Jobs)

	for i, file := range files {
		g.Go(func() error {
			name, src, err := source(file, stdin)
			if err != nil {
				results[i] = result{err: err}
				return nil
			}

			c.logger.LogAttrs(gctx, slog.LevelDebug, "Checking file", slog.String("file", name))

			findings, err := jscheck.Source(gctx, fset, name, src, opts)
			results[i] = result{findings: findings, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var report output.Report
	for i, file := range files {
		report.Add(displayName(file), results[i].findings, results[i].err)
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "Check complete",
		slog.Int("files", len(files)), slog.Int("findings", report.Findings), slog.Int("errors", report.Errors))

	if err := output.Write(c.stdout, &report, c.cfg.Format, output.Colored(c.cfg.Color, c.stdout)); err != nil {
		return err
	}

	switch {
	case report.Errors > 0:
		return fmt.Errorf("%w: %d", ErrUnchecked, report.Errors)

	case report.Findings > 0:
		return ErrFindings

	default:
		return nil
	}
}

// source returns the display name and content of a file to check.
func source(file string, stdin []byte) (string, []byte, error) {
	if file == "-" {
		return stdinName, stdin, nil
	}

	src, err := os.ReadFile(file)

	return file, src, err
}

func displayName(file string) string {
	if file == "-" {
		return stdinName
	}

	return file
}

// collect expands the command line arguments into the files to check.
func (c *checker) collect(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string

	for _, arg := range args {
		if arg == "-" {
			files = append(files, arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case c.excluded(d.Name()) && path != arg:
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil

			case !d.IsDir() && slices.Contains(c.cfg.Extensions, filepath.Ext(path)):
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (c *checker) excluded(name string) bool {
	for _, pattern := range c.cfg.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
