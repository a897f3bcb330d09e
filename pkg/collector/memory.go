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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/collector/file"
)

// lowMemoryPercent marks the pressure point below which the OS is
// expected to start killing background processes.
const lowMemoryPercent = 15

// MemoryCollector reads the RAM state from /proc/meminfo.
type MemoryCollector struct {
	ProcRoot string
}

// Collect gathers the current memory capabilities of the device.
func (c *MemoryCollector) Collect(ctx context.Context) (*capability.MemoryCapabilities, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues("memory").Observe(time.Since(start).Seconds())
	}()

	path := filepath.Join(c.ProcRoot, "meminfo")
	fields, err := file.NewParser().GetMap(path)
	if err != nil {
		probeErrors.WithLabelValues("memory").Inc()
		return nil, fmt.Errorf("failed to read meminfo: %w", err)
	}

	total, err := parseMeminfoBytes(fields, "MemTotal")
	if err != nil {
		probeErrors.WithLabelValues("memory").Inc()
		return nil, err
	}

	available, err := parseMeminfoBytes(fields, "MemAvailable")
	if err != nil {
		probeErrors.WithLabelValues("memory").Inc()
		return nil, err
	}

	percent := float64(available) / float64(total) * 100

	return &capability.MemoryCapabilities{
		TotalBytes:       total,
		AvailableBytes:   available,
		AvailablePercent: percent,
		LowMemory:        percent < lowMemoryPercent,
	}, nil
}

// parseMeminfoBytes converts a meminfo field ("16384000 kB") to bytes.
func parseMeminfoBytes(fields map[string]string, key string) (int64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("meminfo field %s not found", key)
	}

	value := strings.TrimSuffix(raw, " kB")
	kb, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("meminfo field %s is malformed (%q): %w", key, raw, err)
	}
	if kb <= 0 {
		return 0, fmt.Errorf("meminfo field %s is not positive: %d", key, kb)
	}

	return kb * 1024, nil
}
