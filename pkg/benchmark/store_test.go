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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/device-pulse/pkg/capability"
)

func testResult() *capability.BenchmarkResult {
	return &capability.BenchmarkResult{
		CPUScore:         5200,
		MemoryScore:      4100,
		CombinedScore:    4833,
		PerformanceClass: capability.ClassMid,
		Timestamp:        time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "pulse", "benchmark.json"))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testResult()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testResult(), got)
}

func TestStore_LoadAbsent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "benchmark.json"))

	got, err := s.Load(context.Background())
	require.NoError(t, err, "a device that never ran a benchmark is not an error")
	assert.Nil(t, got)
}

func TestStore_SaveReplaces(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "benchmark.json"))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testResult()))

	newer := testResult()
	newer.CombinedScore = 9000
	newer.PerformanceClass = capability.ClassMidHigh
	newer.Timestamp = newer.Timestamp.Add(24 * time.Hour)
	require.NoError(t, s.Save(ctx, newer))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "benchmark.json"))
	ctx := context.Background()

	require.Error(t, s.Save(ctx, nil))
	require.Error(t, s.Save(ctx, &capability.BenchmarkResult{}), "zero timestamp must be rejected")
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path).Load(context.Background())
	require.Error(t, err)
}
