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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NVIDIA/device-pulse/pkg/benchmark"
	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/collector"
	"github.com/NVIDIA/device-pulse/pkg/errors"
	"github.com/NVIDIA/device-pulse/pkg/logging"
	"github.com/NVIDIA/device-pulse/pkg/recommendation"
	"github.com/NVIDIA/device-pulse/pkg/server"
	"github.com/NVIDIA/device-pulse/pkg/snapshot"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

const (
	name = "pulsed"

	// envBenchmarkPath overrides where the persisted benchmark
	// result is read from.
	envBenchmarkPath = "BENCHMARK_STORE_PATH"

	defaultBenchmarkPath = "/data/pulse/benchmark.json"
)

// storePath returns the benchmark store location, honoring the
// environment override.
func storePath() string {
	if p := os.Getenv(envBenchmarkPath); p != "" {
		return p
	}
	return defaultBenchmarkPath
}

// newHandlers builds the application route map served behind the
// middleware chain.
func newHandlers(provider capability.Provider) map[string]http.HandlerFunc {
	engine := recommendation.New(provider)
	snapshotter := &snapshot.DeviceSnapshotter{
		Version:  version.Release,
		Provider: provider,
	}

	return map[string]http.HandlerFunc{
		"/v1/recommendations": (&recommendation.Handler{Engine: engine}).HandleRecommendations,
		"/v1/snapshot":        (&snapshot.Handler{Snapshotter: snapshotter}).HandleSnapshot,
	}
}

// Serve starts the API server and blocks until shutdown. SIGINT and
// SIGTERM trigger a graceful drain.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.SetDefaultStructuredLogger(name, version.Release)

	build := version.Build()
	slog.Info("starting",
		"name", name,
		"version", build.Version,
		"commit", build.Commit,
		"date", build.Date,
	)

	factory := collector.NewDefaultFactory()
	store := benchmark.NewStore(storePath())
	provider := collector.NewSystem(factory, store)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version.Release
	cfg.Handlers = newHandlers(provider)

	s := server.New(cfg)
	if err := s.Start(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return errors.Wrap(errors.ErrCodeInternal, "api server", err)
	}

	return nil
}
