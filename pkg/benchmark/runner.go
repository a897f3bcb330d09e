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

package benchmark

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/defaults"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

// scaleRevision tracks the scoring kernel generation. Results from
// different revisions are not comparable.
const scaleRevision = 1

const (
	// cpuBlockSize is the hash input per CPU work unit.
	cpuBlockSize = 64 << 10

	// memBlockSize is the buffer size per memory work unit, large enough
	// to defeat L2 caches on current mobile SoCs.
	memBlockSize = 8 << 20

	// cpuScaleDivisor and memScaleDivisor map raw work-unit throughput
	// onto the shared score scale used by capability.ClassifyScore.
	cpuScaleDivisor = 4
	memScaleDivisor = 2
)

// RunnerOption configures the Runner.
type RunnerOption func(*Runner)

// WithWorkloadDuration overrides the target wall time per workload.
func WithWorkloadDuration(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.workloadDuration = d
	}
}

// WithRunnerClock overrides the timestamp source.
func WithRunnerClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// Runner executes the scoring workloads.
type Runner struct {
	workloadDuration time.Duration
	now              func() time.Time
}

// NewRunner creates a benchmark runner with default settings.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		workloadDuration: defaults.BenchmarkWorkloadDuration,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes both workloads and returns the scored result. The run is
// bounded by the context; cancellation between workloads aborts the run.
func (r *Runner) Run(ctx context.Context) (*capability.BenchmarkResult, error) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	cpuScore, err := r.runCPUWorkload(ctx)
	if err != nil {
		return nil, err
	}

	memScore, err := r.runMemoryWorkload(ctx)
	if err != nil {
		return nil, err
	}

	// CPU weighs double: automation workloads are compute-bound first.
	combined := (cpuScore*2 + memScore) / 3

	result := &capability.BenchmarkResult{
		CPUScore:         cpuScore,
		MemoryScore:      memScore,
		CombinedScore:    combined,
		PerformanceClass: capability.ClassifyScore(combined),
		Timestamp:        r.now().UTC(),
	}
	if version.Build().Semver != nil {
		result.Release = version.Release
	}

	runsTotal.WithLabelValues(result.PerformanceClass.String()).Inc()
	slog.Info("benchmark completed",
		"cpuScore", cpuScore,
		"memScore", memScore,
		"combined", combined,
		"class", result.PerformanceClass.String(),
		"revision", scaleRevision,
	)

	return result, nil
}

// runCPUWorkload hashes fixed blocks until the workload duration elapses
// and converts work units per millisecond into a score.
func (r *Runner) runCPUWorkload(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	block := make([]byte, cpuBlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	digest := xxhash.New()
	var units uint64

	start := time.Now()
	deadline := start.Add(r.workloadDuration)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		_, _ = digest.Write(block)
		// Fold the sum back in so the loop cannot be optimized away.
		block[0] = byte(digest.Sum64())
		units++
	}

	elapsed := time.Since(start)
	return scaleScore(units, elapsed, cpuScaleDivisor), nil
}

// runMemoryWorkload copies large buffers until the workload duration
// elapses and converts bandwidth into a score.
func (r *Runner) runMemoryWorkload(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	src := make([]byte, memBlockSize)
	dst := make([]byte, memBlockSize)
	for i := range src {
		src[i] = byte(i)
	}

	var units uint64

	start := time.Now()
	deadline := start.Add(r.workloadDuration)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		copy(dst, src)
		src[0] = dst[memBlockSize-1] + 1
		units++
	}

	elapsed := time.Since(start)
	return scaleScore(units, elapsed, memScaleDivisor), nil
}

// scaleScore converts work units over elapsed time onto the shared
// score scale. Zero elapsed time yields a zero score.
func scaleScore(units uint64, elapsed time.Duration, divisor uint64) uint64 {
	ms := uint64(elapsed.Milliseconds())
	if ms == 0 {
		return 0
	}
	return units * 1000 / ms / divisor
}
