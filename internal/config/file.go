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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".reuseguard.yaml"

// envPrefix prefixes environment variables overriding the configuration file.
const envPrefix = "REUSEGUARD_"

// File is the configuration of the command line checker.
type File struct {
	Format     Format     `yaml:"format"`
	Color      Color      `yaml:"color"`
	DeadStores bool       `yaml:"dead-stores"`
	Jobs       int        `yaml:"jobs"`
	LogLevel   slog.Level `yaml:"log-level"`
	Extensions []string   `yaml:"extensions"`
	Exclude    []string   `yaml:"exclude"`
}

// DefaultFile returns the configuration used without a configuration file.
func DefaultFile() File {
	return File{
		Format:     FormatText,
		Color:      ColorAuto,
		DeadStores: true,
		Jobs:       runtime.GOMAXPROCS(0),
		LogLevel:   slog.LevelWarn,
		Extensions: []string{".js", ".mjs", ".cjs"},
		Exclude:    []string{"node_modules"},
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path reads [FileName] when it exists.
func Load(path string) (File, error) {
	cfg := DefaultFile()

	optional := path == ""
	if optional {
		path = FileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:

	case optional && errors.Is(err, fs.ErrNotExist):
		return cfg, nil

	default:
		return File{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.Decode(data); err != nil {
		return File{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays the YAML document data. Unknown keys are rejected.
func (c *File) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return c.Validate()
}

// Encode returns the configuration as a YAML document.
func (c File) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Save writes the configuration file to path.
func (c File) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides settings from REUSEGUARD_* environment variables
// FORMAT, COLOR, DEAD_STORES, JOBS and LOG_LEVEL.
func (c *File) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "FORMAT"); ok {
		if err := c.Format.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sFORMAT: %w", envPrefix, err)
		}
	}

	if v, ok := lookup(envPrefix + "COLOR"); ok {
		if err := c.Color.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sCOLOR: %w", envPrefix, err)
		}
	}

	if v, ok := lookup(envPrefix + "DEAD_STORES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEAD_STORES: %w", envPrefix, err)
		}

		c.DeadStores = b
	}

	if v, ok := lookup(envPrefix + "JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sJOBS: %w", envPrefix, err)
		}

		c.Jobs = n
	}

	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
		}
	}

	return c.Validate()
}

// ErrInvalidJobs is returned for a non-positive number of parallel jobs.
var ErrInvalidJobs = errors.New("jobs must be positive")

// Validate checks the configuration for consistency.
func (c *File) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidJobs, c.Jobs)
	}

	return nil
}
