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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/device-pulse/pkg/capability"
)

func TestBenchmarkCommand(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "bench.json")
	out := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runCLI(t, "benchmark",
		"--duration", "50ms",
		"--benchmark-store", storePath,
		"--output", out,
		"--format", "json",
	))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var result capability.BenchmarkResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.NotZero(t, result.CombinedScore)
	assert.True(t, result.PerformanceClass.IsValid())
	assert.False(t, result.Timestamp.IsZero())

	// The result is persisted by default.
	_, err = os.Stat(storePath)
	assert.NoError(t, err)
}

func TestBenchmarkCommand_NoSave(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "bench.json")
	out := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runCLI(t, "benchmark",
		"--duration", "50ms",
		"--no-save",
		"--benchmark-store", storePath,
		"--output", out,
		"--format", "json",
	))

	_, err := os.Stat(storePath)
	assert.True(t, os.IsNotExist(err))
}
