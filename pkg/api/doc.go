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

// Package api provides the HTTP API layer of the device-pulse daemon.
//
// It is a thin wrapper around the reusable pkg/server package,
// configuring it with the capability probes and the recommendation
// engine and delegating lifecycle management.
//
// # Usage
//
//	if err := api.Serve(); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/recommendations - Evaluate recommendation rules against
//     current device state; ?benchmark=stored folds in the persisted
//     benchmark result
//   - GET /v1/snapshot - Capture a capability snapshot of the device
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// Environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - BENCHMARK_STORE_PATH: Persisted benchmark location
//     (default: /data/pulse/benchmark.json)
//
// Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/device-pulse/pkg/version.Release=1.0.0'"
package api
