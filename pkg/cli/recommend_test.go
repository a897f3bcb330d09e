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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/device-pulse/pkg/benchmark"
	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/recommendation"
)

func TestRecommendCommand_Basic(t *testing.T) {
	proc, sys, data := fakeDeviceRoots(t)
	out := filepath.Join(t.TempDir(), "recs.json")

	require.NoError(t, runCLI(t, "recommend",
		"--proc-root", proc,
		"--sys-root", sys,
		"--data-path", data,
		"--benchmark-store", filepath.Join(data, "bench.json"),
		"--output", out,
		"--format", "json",
	))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp recommendation.Response
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "basic", resp.Source)
	assert.Equal(t, len(resp.Recommendations), resp.Count)
}

func TestRecommendCommand_StoredBenchmark(t *testing.T) {
	proc, sys, data := fakeDeviceRoots(t)

	storePath := filepath.Join(data, "bench.json")
	require.NoError(t, benchmark.NewStore(storePath).Save(context.Background(), &capability.BenchmarkResult{
		CPUScore:         15000,
		MemoryScore:      10000,
		CombinedScore:    13000,
		PerformanceClass: capability.ClassHigh,
		Timestamp:        time.Now().UTC(),
	}))

	out := filepath.Join(t.TempDir(), "recs.json")
	require.NoError(t, runCLI(t, "recommend",
		"--benchmark",
		"--proc-root", proc,
		"--sys-root", sys,
		"--data-path", data,
		"--benchmark-store", storePath,
		"--output", out,
		"--format", "json",
	))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp recommendation.Response
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "benchmark", resp.Source)
}

func TestRecommendCommand_BenchmarkFile(t *testing.T) {
	proc, sys, data := fakeDeviceRoots(t)

	benchFile := filepath.Join(t.TempDir(), "result.json")
	raw, err := json.Marshal(&capability.BenchmarkResult{
		CPUScore:         2000,
		MemoryScore:      4000,
		CombinedScore:    2600,
		PerformanceClass: capability.ClassMid,
		Timestamp:        time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(benchFile, raw, 0o600))

	out := filepath.Join(t.TempDir(), "recs.json")
	require.NoError(t, runCLI(t, "recommend",
		"--benchmark-file", benchFile,
		"--proc-root", proc,
		"--sys-root", sys,
		"--data-path", data,
		"--benchmark-store", filepath.Join(data, "bench.json"),
		"--output", out,
		"--format", "json",
	))

	rawOut, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp recommendation.Response
	require.NoError(t, json.Unmarshal(rawOut, &resp))
	assert.Equal(t, "benchmark", resp.Source)
	assert.NotZero(t, resp.Count, "a MID-class result with a CPU bottleneck emits guidance")
}

func TestRecommendCommand_InvalidThresholdsFile(t *testing.T) {
	proc, sys, data := fakeDeviceRoots(t)

	bad := filepath.Join(t.TempDir(), "thresholds.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bottleneckRatio: 0.5\n"), 0o600))

	err := runCLI(t, "recommend",
		"--thresholds", bad,
		"--proc-root", proc,
		"--sys-root", sys,
		"--data-path", data,
		"--benchmark-store", filepath.Join(data, "bench.json"),
		"--output", filepath.Join(t.TempDir(), "recs.json"),
		"--format", "json",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bottleneckRatio")
}

func TestRecommendCommand_BenchmarkFlagWithoutStore(t *testing.T) {
	proc, sys, data := fakeDeviceRoots(t)
	out := filepath.Join(t.TempDir(), "recs.json")

	// Absent store falls back to the basic rules.
	require.NoError(t, runCLI(t, "recommend",
		"--benchmark",
		"--proc-root", proc,
		"--sys-root", sys,
		"--data-path", data,
		"--benchmark-store", filepath.Join(data, "missing.json"),
		"--output", out,
		"--format", "json",
	))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var resp recommendation.Response
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "basic", resp.Source)
}
