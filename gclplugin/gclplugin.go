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


package gclplugin

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	reuseguard "fillmore-labs.com/reuseguard/analyzer"
)

const linterName = "reuseguard"

func init() { register.Plugin(linterName, New) }

// New decodes golangci-lint's raw settings and returns a [Plugin] configured by them.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	// golangci-lint filters generated files on its own.
	opts := reuseguard.Options{reuseguard.WithGenerated(true)}
	opts = append(opts, settings.Options()...)

	return Plugin{opts: opts}, nil
}

// Plugin runs the reuseguard analyzer inside golangci-lint.
type Plugin struct {
	opts reuseguard.Options
}

// GetLoadMode reports that the analyzer needs type information.
func (Plugin) GetLoadMode() string { return register.LoadModeTypesInfo }

// BuildAnalyzers returns a freshly configured reuseguard analyzer.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{reuseguard.New(p.opts)}, nil
}
