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
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/defaults"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
)

// probeCount is the number of parallel probes Capture runs.
const probeCount = 5

// DeviceSnapshotter captures device capability snapshots. It runs the
// probes in parallel and serializes the assembled snapshot.
type DeviceSnapshotter struct {
	// Version is the snapshotter version.
	Version string

	// Provider is the capability source to snapshot.
	Provider capability.Provider

	// Serializer is used by Measure to write the snapshot. If nil, a
	// stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Measure captures a snapshot and serializes it.
func (d *DeviceSnapshotter) Measure(ctx context.Context) error {
	snap, err := d.Capture(ctx)
	if err != nil {
		return err
	}

	out := d.Serializer
	if out == nil {
		out = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	return out.Serialize(ctx, snap)
}

// Capture runs all probes in parallel and assembles the snapshot. A
// failed probe degrades its section to nil and is recorded in Degraded;
// only context cancellation fails the capture as a whole.
func (d *DeviceSnapshotter) Capture(ctx context.Context) (*DeviceSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		captureDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, defaults.SnapshotTimeout)
	defer cancel()

	snap := &DeviceSnapshot{
		Kind:       Kind,
		APIVersion: APIVersion,
		ID:         uuid.NewString(),
		CapturedAt: start.UTC(),
		Version:    d.Version,
	}

	var mu sync.Mutex
	degrade := func(probe string, err error) {
		slog.Warn("probe degraded during capture", "probe", probe, "error", err)
		degradedTotal.WithLabelValues(probe).Inc()
		mu.Lock()
		snap.Degraded = append(snap.Degraded, probe)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cpu, err := d.Provider.GetCPUCapabilities(gctx)
		if err != nil {
			degrade("cpu", err)
			return nil
		}
		mu.Lock()
		snap.CPU = cpu
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		mem, err := d.Provider.GetMemoryCapabilities(gctx)
		if err != nil {
			degrade("memory", err)
			return nil
		}
		mu.Lock()
		snap.Memory = mem
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		bat, err := d.Provider.GetBatteryStatus(gctx)
		if err != nil {
			degrade("battery", err)
			return nil
		}
		mu.Lock()
		snap.Battery = bat
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		sto, err := d.Provider.GetStorageCapabilities(gctx)
		if err != nil {
			degrade("storage", err)
			return nil
		}
		mu.Lock()
		snap.Storage = sto
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		bench, err := d.Provider.GetBenchmarkResults(gctx)
		if err != nil {
			degrade("benchmark", err)
			return nil
		}
		mu.Lock()
		snap.Benchmark = bench
		mu.Unlock()
		return nil
	})

	// Probes record their own failures; Wait only surfaces cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// A capture where every probe failed carries no information.
	if len(snap.Degraded) == probeCount {
		return nil, fmt.Errorf("all %d probes failed", probeCount)
	}

	// Probe goroutines finish in arbitrary order.
	sort.Strings(snap.Degraded)

	capturesTotal.Inc()
	slog.Debug("device snapshot captured",
		"id", snap.ID,
		"degraded", snap.Degraded,
	)

	return snap, nil
}
