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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for unrecognized enumeration values in the configuration.
var ErrUnknownFormat = errors.New("unknown format")

// Format specifies the report format of the command line checker.
type Format uint8

const (
	// FormatText is a line per finding, suitable for terminals and editors.
	FormatText Format = iota

	// FormatJSON is a single JSON document.
	FormatJSON

	// FormatYAML is a single YAML document.
	FormatYAML

	// FormatMsgpack is a single MessagePack document.
	FormatMsgpack
)

var formatNames = [...]string{
	FormatText:    "text",
	FormatJSON:    "json",
	FormatYAML:    "yaml",
	FormatMsgpack: "msgpack",
}

// Formats lists the names of all report formats.
func Formats() []string { return formatNames[:] }

// String implements [fmt.Stringer].
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", f)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	if int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: report format %d", ErrUnknownFormat, f)
	}

	return []byte(formatNames[f]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text":
		*f = FormatText

	case "json":
		*f = FormatJSON

	case "yaml", "yml":
		*f = FormatYAML

	case "msgpack":
		*f = FormatMsgpack

	default:
		return fmt.Errorf("%w: report format %q", ErrUnknownFormat, string(text))
	}

	return nil
}

// Set implements [github.com/spf13/pflag.Value].
func (f *Format) Set(s string) error { return f.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Format) Type() string { return "format" }

// Color specifies when text output is colored.
type Color uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto Color = iota

	// ColorAlways always colors output.
	ColorAlways

	// ColorNever disables colors.
	ColorNever
)

// String implements [fmt.Stringer].
func (c Color) String() string {
	switch c {
	case ColorAuto:
		return "auto"

	case ColorAlways:
		return "always"

	case ColorNever:
		return "never"

	default:
		return fmt.Sprintf("Color(%d)", c)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	if c > ColorNever {
		return nil, fmt.Errorf("%w: color mode %d", ErrUnknownFormat, c)
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*c = ColorAuto

	case "always", "true", "on":
		*c = ColorAlways

	case "never", "false", "off":
		*c = ColorNever

	default:
		return fmt.Errorf("%w: color mode %q", ErrUnknownFormat, string(text))
	}

	return nil
}

// Set implements [github.com/spf13/pflag.Value].
func (c *Color) Set(s string) error { return c.UnmarshalText([]byte(s)) }

// Type implements [github.com/spf13/pflag.Value].
func (*Color) Type() string { return "color" }
