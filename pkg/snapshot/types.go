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

package snapshot

import (
	"context"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
)

// Snapshotter defines the interface for capturing device state snapshots.
// Implementations gather capability readings from the device probes and
// serialize the results for analysis or recommendation generation.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Resource header values stamped on every snapshot.
const (
	Kind       = "deviceSnapshot"
	APIVersion = "pulse.nvidia.com/v1alpha1"
)

// DeviceSnapshot is a point-in-time capture of the device's capabilities.
// Sections for probes that failed are nil and listed in Degraded; a
// snapshot with failed probes is still usable.
type DeviceSnapshot struct {
	// Kind identifies the resource type.
	Kind string `json:"kind" yaml:"kind"`

	// APIVersion is the schema version of the resource.
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`

	// ID uniquely identifies this capture.
	ID string `json:"id" yaml:"id"`

	// CapturedAt is the instant the capture started.
	CapturedAt time.Time `json:"capturedAt" yaml:"capturedAt"`

	// Version is the version of the capturing binary.
	Version string `json:"version" yaml:"version"`

	CPU     *capability.CPUCapabilities     `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory  *capability.MemoryCapabilities  `json:"memory,omitempty" yaml:"memory,omitempty"`
	Battery *capability.BatteryStatus       `json:"battery,omitempty" yaml:"battery,omitempty"`
	Storage *capability.StorageCapabilities `json:"storage,omitempty" yaml:"storage,omitempty"`

	// Benchmark is the stored benchmark result, if any.
	Benchmark *capability.BenchmarkResult `json:"benchmark,omitempty" yaml:"benchmark,omitempty"`

	// Degraded lists the probes that failed during this capture.
	Degraded []string `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}
