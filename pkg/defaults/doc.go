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

// Package defaults provides centralized configuration constants for device-pulse.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and makes
// tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Probe timeouts: For device capability collection operations
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Benchmark timeouts: For benchmark execution
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/device-pulse/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - Probes: 10s default, respects parent context deadline
//   - HTTP handlers: 15s for recommendations, 30s for snapshots
//   - Benchmark runs: 60s total across both workloads
//   - Server shutdown: 30s for graceful shutdown
package defaults
