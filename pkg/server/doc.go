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

// Package server provides the HTTP server hosting the device-pulse API.
//
// # Routes
//
// System endpoints are always mounted and bypass rate limiting:
//
//   - GET /health   liveness
//   - GET /ready    readiness
//   - GET /metrics  Prometheus exposition
//
// API handlers are injected through Config.Handlers and run behind the
// full middleware chain: metrics, request ID propagation, panic
// recovery, token-bucket rate limiting, and request logging.
//
// # Usage
//
//	cfg := server.NewConfig()
//	cfg.Handlers = map[string]http.HandlerFunc{
//	    "/v1/recommendations": recHandler.HandleRecommendations,
//	    "/v1/snapshot":        snapHandler.HandleSnapshot,
//	}
//	srv := server.New(cfg)
//	err := srv.Start(ctx) // blocks until ctx is canceled
//
// # Request IDs
//
// Clients may supply X-Request-Id; invalid or missing IDs are replaced
// with a generated UUID. The ID is echoed in the response header and
// attached to error payloads.
package server
