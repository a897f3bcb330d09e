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

package capability

import "context"

// Provider supplies capability readings for the current device.
// Implementations must be safe for concurrent reads.
//
// Optional readings (battery, benchmark) return (nil, nil) when the
// underlying state does not exist; nil error with nil value is the
// "absent" contract, not a failure.
type Provider interface {
	// GetCPUCapabilities returns the processor description.
	GetCPUCapabilities(ctx context.Context) (*CPUCapabilities, error)

	// GetMemoryCapabilities returns the current RAM state.
	GetMemoryCapabilities(ctx context.Context) (*MemoryCapabilities, error)

	// GetBatteryStatus returns the battery state, or (nil, nil) when the
	// device has no battery.
	GetBatteryStatus(ctx context.Context) (*BatteryStatus, error)

	// GetStorageCapabilities returns the storage state.
	GetStorageCapabilities(ctx context.Context) (*StorageCapabilities, error)

	// GetBenchmarkResults returns the most recent persisted benchmark
	// result, or (nil, nil) when no benchmark has been run.
	GetBenchmarkResults(ctx context.Context) (*BenchmarkResult, error)
}
