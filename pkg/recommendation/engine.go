// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

// Engine derives optimization recommendations from device capability
// readings. It is a pure function of its inputs: it holds only read-only
// references and retains no state across calls, so concurrent invocation
// is safe as long as the bound Provider is safe for concurrent reads.
type Engine struct {
	provider   capability.Provider
	thresholds Thresholds
	now        func() time.Time

	// build is the running release, nil for dev builds. Staleness
	// evaluation compares benchmark results against it.
	build *version.Version
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithThresholds overrides the default rule trigger points.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// WithClock overrides the time source, used by staleness evaluation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithBuildVersion overrides the release used for benchmark staleness
// comparison. Defaults to the running binary's release.
func WithBuildVersion(v version.Version) Option {
	return func(e *Engine) {
		e.build = &v
	}
}

// New creates a new Engine bound to the provided capability source.
func New(provider capability.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider:   provider,
		thresholds: DefaultThresholds(),
		now:        time.Now,
		build:      version.Build().Semver,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// GetBasicRecommendations evaluates the environmental rules (battery,
// temperature, memory, storage) against live capability reads and returns
// an ordered, non-empty list of recommendations.
//
// The returned list is sorted by importance descending; entries of equal
// importance keep rule-registration order. Degraded or missing capability
// data never produces an error: the affected rules are skipped and a
// fallback entry is appended instead.
func (e *Engine) GetBasicRecommendations(ctx context.Context) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		evalDuration.WithLabelValues("basic").Observe(time.Since(start).Seconds())
	}()

	in, degraded := e.gather(ctx, nil)
	recs := e.evaluate(in, environmentalRules, degraded, true)

	evalTotal.WithLabelValues("basic").Inc()
	slog.Debug("basic recommendations generated", "count", len(recs), "degraded", degraded)

	return recs, nil
}

// GetRecommendationsFromBenchmark evaluates the benchmark rules against
// the provided result, merges in the environmental rules (a benchmark does
// not supersede live device state), and returns an ordered, non-empty list.
//
// The caller guarantees a non-nil result; a nil result is the only error
// condition.
func (e *Engine) GetRecommendationsFromBenchmark(ctx context.Context, result *capability.BenchmarkResult) ([]Recommendation, error) {
	if result == nil {
		return nil, fmt.Errorf("benchmark result cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		evalDuration.WithLabelValues("benchmark").Observe(time.Since(start).Seconds())
	}()

	in, degraded := e.gather(ctx, result)

	rules := make([]rule, 0, len(environmentalRules)+len(benchmarkRules))
	rules = append(rules, environmentalRules...)
	rules = append(rules, benchmarkRules...)

	recs := e.evaluate(in, rules, degraded, false)

	evalTotal.WithLabelValues("benchmark").Inc()
	slog.Debug("benchmark recommendations generated",
		"count", len(recs),
		"degraded", degraded,
		"class", result.PerformanceClass.String(),
	)

	return recs, nil
}

// gather reads all capability inputs from the provider. A failed read
// degrades that reading to nil rather than failing the evaluation. When
// bench is non-nil it takes precedence over the provider's stored result.
func (e *Engine) gather(ctx context.Context, bench *capability.BenchmarkResult) (*input, bool) {
	in := &input{
		bench: bench,
		now:   e.now(),
		build: e.build,
	}
	degraded := false

	if cpu, err := readGuarded(ctx, e.provider.GetCPUCapabilities); err != nil {
		slog.Debug("cpu capability read failed", "error", err)
		degraded = true
	} else {
		in.cpu = cpu
	}

	if mem, err := readGuarded(ctx, e.provider.GetMemoryCapabilities); err != nil {
		slog.Debug("memory capability read failed", "error", err)
		degraded = true
	} else {
		in.memory = mem
	}

	if bat, err := readGuarded(ctx, e.provider.GetBatteryStatus); err != nil {
		slog.Debug("battery status read failed", "error", err)
		degraded = true
	} else {
		in.battery = bat
	}

	if sto, err := readGuarded(ctx, e.provider.GetStorageCapabilities); err != nil {
		slog.Debug("storage capability read failed", "error", err)
		degraded = true
	} else {
		in.storage = sto
	}

	if in.bench == nil {
		if b, err := readGuarded(ctx, e.provider.GetBenchmarkResults); err != nil {
			slog.Debug("benchmark result read failed", "error", err)
			degraded = true
		} else {
			in.bench = b
		}
	}

	return in, degraded
}

// evaluate runs the rules in order with per-rule fault isolation, appends
// the benchmark suggestion and fallback floors, and orders the result.
func (e *Engine) evaluate(in *input, rules []rule, degraded bool, suggestBenchmark bool) []Recommendation {
	recs := make([]Recommendation, 0, len(rules)+2)

	for _, r := range rules {
		out, err := runRule(r, e.thresholds, in)
		switch {
		case err != nil:
			ruleOutcomes.WithLabelValues(r.name, "skipped").Inc()
			slog.Debug("rule skipped", "rule", r.name, "reason", err.Error())
			degraded = true
		case len(out) > 0:
			ruleOutcomes.WithLabelValues(r.name, "emitted").Inc()
			recs = append(recs, out...)
		default:
			ruleOutcomes.WithLabelValues(r.name, "clear").Inc()
		}
	}

	if suggestBenchmark && in.bench == nil {
		recs = append(recs, benchmarkSuggestion())
	}

	if degraded {
		recs = append(recs, fallback())
	}

	// Output is contractually non-empty: a healthy device with a current
	// benchmark still gets a status entry.
	if len(recs) == 0 {
		recs = append(recs, allClear())
	}

	for _, r := range recs {
		emittedTotal.WithLabelValues(r.Importance.String()).Inc()
	}

	// Stable sort preserves rule-registration order within a tier.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Importance.rank() < recs[j].Importance.rank()
	})

	return recs
}

// runRule evaluates a single rule, converting panics into skip errors so
// one faulting rule never takes down the evaluation.
func runRule(r rule, t Thresholds, in *input) (recs []Recommendation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rulePanics.WithLabelValues(r.name).Inc()
			recs = nil
			err = fmt.Errorf("rule %s panicked: %v", r.name, rec)
		}
	}()

	return r.eval(t, in)
}

// readGuarded invokes a provider read, converting panics into errors.
func readGuarded[T any](ctx context.Context, read func(context.Context) (*T, error)) (v *T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v = nil
			err = fmt.Errorf("capability read panicked: %v", rec)
		}
	}()

	return read(ctx)
}
