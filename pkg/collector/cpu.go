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
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/collector/file"
)

// simdFlags are the vector extension markers across architectures:
// neon/asimd on arm, the sse/avx family on x86.
var simdFlags = []string{"neon", "asimd", "avx", "avx2", "sse4_2"}

// CPUCollector reads processor capabilities from /proc/cpuinfo and the
// cpufreq sysfs attributes.
type CPUCollector struct {
	ProcRoot string
	SysRoot  string
}

// Collect gathers the processor capabilities of the device.
func (c *CPUCollector) Collect(ctx context.Context) (*capability.CPUCapabilities, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues("cpu").Observe(time.Since(start).Seconds())
	}()

	parser := file.NewParser()

	lines, err := parser.GetLines(filepath.Join(c.ProcRoot, "cpuinfo"))
	if err != nil {
		probeErrors.WithLabelValues("cpu").Inc()
		return nil, fmt.Errorf("failed to read cpuinfo: %w", err)
	}

	cores := 0
	simd := false
	for _, line := range lines {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			cores++
		case "flags", "Features":
			// flags on x86, Features on arm
			if !simd {
				simd = hasSIMDFlag(value)
			}
		}
	}

	if cores == 0 {
		probeErrors.WithLabelValues("cpu").Inc()
		return nil, fmt.Errorf("no processor entries in cpuinfo")
	}

	maxFreqKHz := c.readMaxFreq(parser)

	return &capability.CPUCapabilities{
		Cores:            cores,
		PerformanceClass: classifyCPU(cores, maxFreqKHz),
		Architecture:     runtime.GOARCH,
		SIMD:             simd,
	}, nil
}

// readMaxFreq returns the maximum cpu0 clock in kHz, or 0 when the
// cpufreq driver does not expose it.
func (c *CPUCollector) readMaxFreq(parser *file.Parser) int64 {
	path := filepath.Join(c.SysRoot, "devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
	khz, err := parser.GetInt(path)
	if err != nil {
		slog.Debug("cpufreq not available", "error", err)
		return 0
	}
	return khz
}

func hasSIMDFlag(flagLine string) bool {
	for _, f := range strings.Fields(flagLine) {
		for _, want := range simdFlags {
			if f == want {
				return true
			}
		}
	}
	return false
}

// classifyCPU derives a coarse tier from core count and maximum clock.
// The tier is a hardware hint only; a benchmark run supersedes it.
func classifyCPU(cores int, maxFreqKHz int64) capability.PerformanceClass {
	if maxFreqKHz == 0 {
		// No cpufreq data, fall back to core count alone.
		switch {
		case cores >= 8:
			return capability.ClassMidHigh
		case cores >= 6:
			return capability.ClassMid
		default:
			return capability.ClassLow
		}
	}

	ghz := float64(maxFreqKHz) / 1e6

	switch {
	case cores >= 8 && ghz >= 2.8:
		return capability.ClassHigh
	case cores >= 8 && ghz >= 2.0, cores >= 6 && ghz >= 2.8:
		return capability.ClassMidHigh
	case cores >= 6, cores >= 4 && ghz >= 2.0:
		return capability.ClassMid
	default:
		return capability.ClassLow
	}
}
