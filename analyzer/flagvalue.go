// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"strconv"
	"strings"

	"fillmore-labs.com/reuseguard/internal/config"
)

// behaviorValue is a boolean [flag.Getter] switching a single behavior flag.
type behaviorValue struct {
	flags *config.Behavior
	value config.Config
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.flags.Set(v.value, b)

	return nil
}

// String implements [flag.Value]. The zero value, used for usage messages, reports false.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.enabled()
}

// IsBoolFlag marks a flag that needs no argument.
func (behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.flags != nil && v.flags.Enabled(v.value)
}

// parseBool accepts the values of [strconv.ParseBool] as well as "on" and "off".
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil

	case "off":
		return false, nil

	default:
		return strconv.ParseBool(s)
	}
}
