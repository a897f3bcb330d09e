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
)

// CPUProbe reads processor capabilities from the device.
type CPUProbe interface {
	Collect(ctx context.Context) (*capability.CPUCapabilities, error)
}

// MemoryProbe reads the current RAM state of the device.
type MemoryProbe interface {
	Collect(ctx context.Context) (*capability.MemoryCapabilities, error)
}

// BatteryProbe reads the battery state of the device. Devices without a
// battery return (nil, nil).
type BatteryProbe interface {
	Collect(ctx context.Context) (*capability.BatteryStatus, error)
}

// StorageProbe reads internal and external storage capabilities.
type StorageProbe interface {
	Collect(ctx context.Context) (*capability.StorageCapabilities, error)
}

// BenchmarkSource supplies a previously captured benchmark result.
// Sources return (nil, nil) when no result has been stored yet.
type BenchmarkSource interface {
	Load(ctx context.Context) (*capability.BenchmarkResult, error)
}
