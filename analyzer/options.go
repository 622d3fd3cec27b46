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
	"log/slog"

	"fillmore-labs.com/reuseguard/internal/config"
	"fillmore-labs.com/reuseguard/internal/run"
)

// Option configures specific behavior of a [New] reuseguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{opt: config.IncludeGenerated, on: generated}
}

// WithDeadStores is an [Option] to report reassignments whose value is never read.
func WithDeadStores(deadStores bool) Option {
	return behaviorOption{opt: config.DeadStores, on: deadStores}
}

// WithErrors is an [Option] to configure whether variables of type error are checked.
func WithErrors(errors bool) Option {
	return behaviorOption{opt: config.TrackErrors, on: errors}
}

// behaviorOption toggles a single [config.Config] option.
type behaviorOption struct {
	opt config.Config
	on  bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.opt, o.on)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.opt.String(), o.on)
}

// WithLogger is an [Option] to receive debug output of the analysis.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
