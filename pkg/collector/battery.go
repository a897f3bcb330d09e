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
	"os"
	"path/filepath"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/collector/file"
)

// BatteryCollector reads battery state from the power_supply class in
// sysfs. Devices without a battery entry report (nil, nil); the engine
// treats an absent reading as "no battery constraints".
type BatteryCollector struct {
	SysRoot string
}

// Collect gathers the battery status of the device.
func (c *BatteryCollector) Collect(ctx context.Context) (*capability.BatteryStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues("battery").Observe(time.Since(start).Seconds())
	}()

	supplyDir, err := c.findBattery()
	if err != nil {
		probeErrors.WithLabelValues("battery").Inc()
		return nil, err
	}
	if supplyDir == "" {
		slog.Debug("no battery power supply found", "sysRoot", c.SysRoot)
		return nil, nil
	}

	parser := file.NewParser()

	level, err := parser.GetInt(filepath.Join(supplyDir, "capacity"))
	if err != nil {
		probeErrors.WithLabelValues("battery").Inc()
		return nil, fmt.Errorf("failed to read battery capacity: %w", err)
	}

	status, err := parser.GetValue(filepath.Join(supplyDir, "status"))
	if err != nil {
		probeErrors.WithLabelValues("battery").Inc()
		return nil, fmt.Errorf("failed to read battery status: %w", err)
	}

	b := &capability.BatteryStatus{
		LevelPercent: int(level),
		Charging:     status == "Charging" || status == "Full",
	}

	// temp is optional and reported in tenths of a degree Celsius.
	if tenths, err := parser.GetInt(filepath.Join(supplyDir, "temp")); err == nil {
		b.TemperatureC = float64(tenths) / 10
	} else {
		slog.Debug("battery temperature not available", "error", err)
	}

	// Battery saver state is not exposed through sysfs. The platform
	// bridge sets SaverMode when it proxies this probe.
	return b, nil
}

// findBattery scans the power_supply class for the first entry of type
// Battery. Returns an empty path when the class is absent or holds only
// AC/USB supplies.
func (c *BatteryCollector) findBattery() (string, error) {
	classDir := filepath.Join(c.SysRoot, "class/power_supply")

	entries, err := os.ReadDir(classDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to scan power supplies: %w", err)
	}

	parser := file.NewParser()
	for _, entry := range entries {
		dir := filepath.Join(classDir, entry.Name())
		kind, err := parser.GetValue(filepath.Join(dir, "type"))
		if err != nil {
			continue
		}
		if kind == "Battery" {
			return dir, nil
		}
	}

	return "", nil
}
