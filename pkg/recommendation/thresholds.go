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

package recommendation

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Thresholds holds the tunable trigger points for every rule. Product
// supplies these as configuration; the engine never hard-codes them.
type Thresholds struct {
	// BatteryCriticalPercent triggers a HIGH battery recommendation at or
	// below this charge level.
	BatteryCriticalPercent int `yaml:"batteryCriticalPercent"`

	// BatteryLowPercent triggers a MEDIUM battery recommendation at or
	// below this charge level when not charging.
	BatteryLowPercent int `yaml:"batteryLowPercent"`

	// TemperatureElevatedC triggers a MEDIUM temperature recommendation at
	// or above this battery temperature.
	TemperatureElevatedC float64 `yaml:"temperatureElevatedC"`

	// TemperatureCriticalC triggers a HIGH temperature recommendation at
	// or above this battery temperature.
	TemperatureCriticalC float64 `yaml:"temperatureCriticalC"`

	// MemoryCriticalPercent triggers a HIGH memory recommendation at or
	// below this available-memory percentage.
	MemoryCriticalPercent float64 `yaml:"memoryCriticalPercent"`

	// MemoryLowPercent triggers a MEDIUM memory recommendation at or below
	// this available-memory percentage.
	MemoryLowPercent float64 `yaml:"memoryLowPercent"`

	// MemoryModeratePercent triggers a LOW memory recommendation at or
	// below this available-memory percentage.
	MemoryModeratePercent float64 `yaml:"memoryModeratePercent"`

	// StorageCriticalBytes triggers a HIGH storage recommendation below
	// this absolute free space.
	StorageCriticalBytes int64 `yaml:"storageCriticalBytes"`

	// StorageCriticalPercent triggers a HIGH storage recommendation below
	// this free-space percentage.
	StorageCriticalPercent float64 `yaml:"storageCriticalPercent"`

	// StorageLowBytes triggers a MEDIUM storage recommendation below this
	// absolute free space.
	StorageLowBytes int64 `yaml:"storageLowBytes"`

	// StorageLowPercent triggers a MEDIUM storage recommendation below
	// this free-space percentage.
	StorageLowPercent float64 `yaml:"storageLowPercent"`

	// BottleneckRatio flags a subsystem as the bottleneck when the sibling
	// score exceeds its score multiplied by this ratio.
	BottleneckRatio float64 `yaml:"bottleneckRatio"`

	// CPUScoreLow triggers class-specific CPU guidance below this score.
	CPUScoreLow uint64 `yaml:"cpuScoreLow"`

	// BenchmarkRenewalDays triggers a rerun suggestion when the benchmark
	// is strictly older than this many days.
	BenchmarkRenewalDays int `yaml:"benchmarkRenewalDays"`
}

// renewalAge returns the benchmark renewal threshold as a duration.
func (t Thresholds) renewalAge() time.Duration {
	return time.Duration(t.BenchmarkRenewalDays) * 24 * time.Hour
}

// DefaultThresholds returns the product defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BatteryCriticalPercent: 15,
		BatteryLowPercent:      30,
		TemperatureElevatedC:   35,
		TemperatureCriticalC:   45,
		MemoryCriticalPercent:  10,
		MemoryLowPercent:       20,
		MemoryModeratePercent:  35,
		StorageCriticalBytes:   1 << 30,  // 1 GiB
		StorageCriticalPercent: 5,
		StorageLowBytes:        5 << 30,  // 5 GiB
		StorageLowPercent:      20,
		BottleneckRatio:        1.5,
		CPUScoreLow:            3000,
		BenchmarkRenewalDays:   30,
	}
}

// Validate checks threshold values for internal consistency.
func (t Thresholds) Validate() error {
	if t.BatteryCriticalPercent < 0 || t.BatteryCriticalPercent > 100 {
		return fmt.Errorf("batteryCriticalPercent out of range: %d", t.BatteryCriticalPercent)
	}
	if t.BatteryLowPercent < t.BatteryCriticalPercent {
		return fmt.Errorf("batteryLowPercent (%d) below batteryCriticalPercent (%d)",
			t.BatteryLowPercent, t.BatteryCriticalPercent)
	}
	if t.TemperatureCriticalC < t.TemperatureElevatedC {
		return fmt.Errorf("temperatureCriticalC (%.1f) below temperatureElevatedC (%.1f)",
			t.TemperatureCriticalC, t.TemperatureElevatedC)
	}
	if t.MemoryCriticalPercent < 0 ||
		t.MemoryLowPercent < t.MemoryCriticalPercent ||
		t.MemoryModeratePercent < t.MemoryLowPercent {
		return fmt.Errorf("memory thresholds not ascending: critical=%.1f low=%.1f moderate=%.1f",
			t.MemoryCriticalPercent, t.MemoryLowPercent, t.MemoryModeratePercent)
	}
	if t.StorageCriticalBytes < 0 || t.StorageLowBytes < t.StorageCriticalBytes {
		return fmt.Errorf("storage byte thresholds not ascending: critical=%d low=%d",
			t.StorageCriticalBytes, t.StorageLowBytes)
	}
	if t.BottleneckRatio <= 1 {
		return fmt.Errorf("bottleneckRatio must be greater than 1, got %.2f", t.BottleneckRatio)
	}
	if t.BenchmarkRenewalDays <= 0 {
		return fmt.Errorf("benchmarkRenewalDays must be positive, got %d", t.BenchmarkRenewalDays)
	}
	return nil
}

// LoadThresholds reads thresholds from a YAML file. Fields absent from the
// file keep their default values.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read thresholds file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse thresholds file %q: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid thresholds in %q: %w", path, err)
	}

	return t, nil
}
