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

package defaults

import "time"

// Probe timeouts for device capability collection.
const (
	// ProbeTimeout is the default timeout for a single capability probe.
	// Probes should respect parent context deadlines when shorter.
	ProbeTimeout = 10 * time.Second

	// SnapshotTimeout bounds a full device snapshot across all probes.
	SnapshotTimeout = 30 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// RecommendationHandlerTimeout is the timeout for recommendation requests.
	RecommendationHandlerTimeout = 15 * time.Second

	// SnapshotHandlerTimeout is the timeout for snapshot requests.
	// Longer than recommendations due to parallel probe fan-out.
	SnapshotHandlerTimeout = 30 * time.Second
)

// Benchmark timeouts and tuning.
const (
	// BenchmarkTimeout bounds a full benchmark run across both workloads.
	BenchmarkTimeout = 60 * time.Second

	// BenchmarkWorkloadDuration is the target wall time per scoring workload.
	BenchmarkWorkloadDuration = 2 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
