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

package collector

import (
	"context"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/defaults"
)

// System is a capability.Provider backed by the device probes. Each read
// is bounded by the probe timeout; a shorter parent deadline wins.
type System struct {
	cpu     CPUProbe
	memory  MemoryProbe
	battery BatteryProbe
	storage StorageProbe
	bench   BenchmarkSource
}

// NewSystem creates a provider from the factory's probes. The benchmark
// source may be nil when no persistence is configured.
func NewSystem(f Factory, bench BenchmarkSource) *System {
	return &System{
		cpu:     f.CreateCPUProbe(),
		memory:  f.CreateMemoryProbe(),
		battery: f.CreateBatteryProbe(),
		storage: f.CreateStorageProbe(),
		bench:   bench,
	}
}

// GetCPUCapabilities reads the processor capabilities of the device.
func (s *System) GetCPUCapabilities(ctx context.Context) (*capability.CPUCapabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()
	return s.cpu.Collect(ctx)
}

// GetMemoryCapabilities reads the current RAM state of the device.
func (s *System) GetMemoryCapabilities(ctx context.Context) (*capability.MemoryCapabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()
	return s.memory.Collect(ctx)
}

// GetBatteryStatus reads the battery state. Devices without a battery
// return (nil, nil).
func (s *System) GetBatteryStatus(ctx context.Context) (*capability.BatteryStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()
	return s.battery.Collect(ctx)
}

// GetStorageCapabilities reads the storage capabilities of the device.
func (s *System) GetStorageCapabilities(ctx context.Context) (*capability.StorageCapabilities, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()
	return s.storage.Collect(ctx)
}

// GetBenchmarkResults returns the stored benchmark result, or (nil, nil)
// when none has been captured.
func (s *System) GetBenchmarkResults(ctx context.Context) (*capability.BenchmarkResult, error) {
	if s.bench == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
	defer cancel()
	return s.bench.Load(ctx)
}
