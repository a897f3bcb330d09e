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
	"errors"
	"fmt"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

// errUnreliable marks a rule whose backing reading exists but carries
// sentinel or out-of-range data. The engine skips the rule and appends a
// fallback entry once per evaluation.
var errUnreliable = errors.New("unreliable capability data")

// input carries the readings a single evaluation works from. Absent
// optional readings are nil.
type input struct {
	cpu     *capability.CPUCapabilities
	memory  *capability.MemoryCapabilities
	battery *capability.BatteryStatus
	storage *capability.StorageCapabilities
	bench   *capability.BenchmarkResult
	now     time.Time

	// build is the running release, nil for dev builds.
	build *version.Version
}

// rule is a single independent predicate over the input. Returning no
// recommendations and no error means the rule did not trigger. Rules must
// be pure: same thresholds and input always produce the same output.
type rule struct {
	name string
	eval func(t Thresholds, in *input) ([]Recommendation, error)
}

// environmentalRules are evaluated against live device state in both
// engine operations. Slice order is the stable tie-break order within
// equal importance.
var environmentalRules = []rule{
	{name: "battery", eval: evalBattery},
	{name: "temperature", eval: evalTemperature},
	{name: "memory", eval: evalMemory},
	{name: "storage", eval: evalStorage},
}

// benchmarkRules are evaluated only when a benchmark result is supplied.
var benchmarkRules = []rule{
	{name: "cpu_bottleneck", eval: evalCPUBottleneck},
	{name: "memory_bottleneck", eval: evalMemoryBottleneck},
	{name: "class_guidance", eval: evalClassGuidance},
	{name: "cpu_score", eval: evalCPUScore},
	{name: "staleness", eval: evalStaleness},
}

func evalBattery(t Thresholds, in *input) ([]Recommendation, error) {
	if in.battery == nil {
		return nil, nil // device has no battery
	}
	if !in.battery.Valid() {
		return nil, errUnreliable
	}

	switch {
	case in.battery.LevelPercent <= t.BatteryCriticalPercent:
		return []Recommendation{{
			ID:         IDBatteryCritical,
			Type:       TypeBattery,
			Title:      "Battery critically low",
			Description: fmt.Sprintf("Battery is at %d%%. Connect the device to power before running long automation sessions.", in.battery.LevelPercent),
			Importance: ImportanceHigh,
			Action:     ActionBatterySettings,
		}}, nil
	case in.battery.LevelPercent <= t.BatteryLowPercent && !in.battery.Charging:
		return []Recommendation{{
			ID:         IDBatteryLow,
			Type:       TypeBattery,
			Title:      "Battery low",
			Description: fmt.Sprintf("Battery is at %d%% and not charging. Consider charging soon.", in.battery.LevelPercent),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalTemperature(t Thresholds, in *input) ([]Recommendation, error) {
	if in.battery == nil {
		return nil, nil
	}
	if !in.battery.Valid() {
		return nil, errUnreliable
	}

	switch {
	case in.battery.TemperatureC >= t.TemperatureCriticalC:
		return []Recommendation{{
			ID:         IDTemperatureCritical,
			Type:       TypeBattery,
			Title:      "Device overheating",
			Description: fmt.Sprintf("Battery temperature is %.1f°C. Stop heavy workloads and let the device cool down.", in.battery.TemperatureC),
			Importance: ImportanceHigh,
		}}, nil
	case in.battery.TemperatureC >= t.TemperatureElevatedC:
		return []Recommendation{{
			ID:         IDTemperatureElevated,
			Type:       TypeBattery,
			Title:      "Device temperature elevated",
			Description: fmt.Sprintf("Battery temperature is %.1f°C. Reduce workload intensity to avoid thermal throttling.", in.battery.TemperatureC),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalMemory(t Thresholds, in *input) ([]Recommendation, error) {
	if in.memory == nil {
		return nil, nil
	}
	if !in.memory.Valid() {
		return nil, errUnreliable
	}

	pct := in.memory.AvailablePercent
	switch {
	case pct <= t.MemoryCriticalPercent:
		return []Recommendation{{
			ID:         IDMemoryCritical,
			Type:       TypeMemory,
			Title:      "Memory critically low",
			Description: fmt.Sprintf("Only %.0f%% of memory is available. Close background applications before continuing.", pct),
			Importance: ImportanceHigh,
		}}, nil
	case pct <= t.MemoryLowPercent:
		return []Recommendation{{
			ID:         IDMemoryLow,
			Type:       TypeMemory,
			Title:      "Memory low",
			Description: fmt.Sprintf("%.0f%% of memory is available. Consider closing unused applications.", pct),
			Importance: ImportanceMedium,
		}}, nil
	case pct <= t.MemoryModeratePercent:
		return []Recommendation{{
			ID:         IDMemoryModerate,
			Type:       TypeMemory,
			Title:      "Memory headroom limited",
			Description: fmt.Sprintf("%.0f%% of memory is available. Memory-heavy scripts may run slower than usual.", pct),
			Importance: ImportanceLow,
		}}, nil
	}
	return nil, nil
}

func evalStorage(t Thresholds, in *input) ([]Recommendation, error) {
	if in.storage == nil {
		return nil, nil
	}
	if !in.storage.Valid() {
		return nil, errUnreliable
	}

	free := in.storage.AvailableBytes
	pct := in.storage.AvailablePercent()
	switch {
	case free < t.StorageCriticalBytes || pct < t.StorageCriticalPercent:
		return []Recommendation{{
			ID:         IDStorageCritical,
			Type:       TypeStorage,
			Title:      "Storage critically low",
			Description: fmt.Sprintf("Only %s of internal storage remains. Free up space to keep the device operational.", formatBytes(free)),
			Importance: ImportanceHigh,
			Action:     ActionStorageSettings,
		}}, nil
	case free < t.StorageLowBytes || pct < t.StorageLowPercent:
		return []Recommendation{{
			ID:         IDStorageLow,
			Type:       TypeStorage,
			Title:      "Storage low",
			Description: fmt.Sprintf("%s of internal storage remains. Consider removing unused files or applications.", formatBytes(free)),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalCPUBottleneck(t Thresholds, in *input) ([]Recommendation, error) {
	b := in.bench
	if b == nil || b.CPUScore == 0 {
		return nil, nil
	}

	if float64(b.MemoryScore) > float64(b.CPUScore)*t.BottleneckRatio {
		return []Recommendation{{
			ID:         IDCPUBottleneck,
			Type:       TypePerformance,
			Title:      "CPU is the performance bottleneck",
			Description: fmt.Sprintf("CPU score (%d) trails memory score (%d) significantly. Prefer lighter compute settings and avoid parallel CPU-bound tasks.", b.CPUScore, b.MemoryScore),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalMemoryBottleneck(t Thresholds, in *input) ([]Recommendation, error) {
	b := in.bench
	if b == nil || b.MemoryScore == 0 {
		return nil, nil
	}

	if float64(b.CPUScore) > float64(b.MemoryScore)*t.BottleneckRatio {
		return []Recommendation{{
			ID:         IDMemoryBottleneck,
			Type:       TypePerformance,
			Title:      "Memory is the performance bottleneck",
			Description: fmt.Sprintf("Memory score (%d) trails CPU score (%d) significantly. Reduce working-set sizes and reuse buffers where possible.", b.MemoryScore, b.CPUScore),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalClassGuidance(_ Thresholds, in *input) ([]Recommendation, error) {
	b := in.bench
	if b == nil {
		return nil, nil
	}

	switch b.PerformanceClass {
	case capability.ClassMid:
		return []Recommendation{
			{
				ID:         IDMidPerf1,
				Type:       TypePerformance,
				Title:      "Tune capture settings for mid-tier hardware",
				Description: "Lower screenshot resolution and capture frequency to keep automation responsive on this device tier.",
				Importance: ImportanceLow,
			},
			{
				ID:         IDMidPerf2,
				Type:       TypePerformance,
				Title:      "Batch UI queries",
				Description: "Group element lookups into fewer larger queries to reduce per-call overhead on mid-tier hardware.",
				Importance: ImportanceLow,
			},
		}, nil
	case capability.ClassLow:
		return []Recommendation{{
			ID:         IDLowPerf1,
			Type:       TypePerformance,
			Title:      "Use minimal automation profile",
			Description: "This device benchmarks in the low tier. Disable visual verification and increase polling intervals.",
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalCPUScore(t Thresholds, in *input) ([]Recommendation, error) {
	b := in.bench
	if b == nil || b.CPUScore >= t.CPUScoreLow {
		return nil, nil
	}

	switch b.PerformanceClass {
	case capability.ClassMid:
		return []Recommendation{{
			ID:         IDCPUMid1,
			Type:       TypePerformance,
			Title:      "CPU underperforms for its tier",
			Description: fmt.Sprintf("CPU score %d is low for a mid-tier device. Check for background load or thermal throttling.", b.CPUScore),
			Importance: ImportanceMedium,
		}}, nil
	case capability.ClassLow:
		return []Recommendation{{
			ID:         IDCPULow1,
			Type:       TypePerformance,
			Title:      "Very limited CPU capacity",
			Description: fmt.Sprintf("CPU score %d is very low. Run automation tasks sequentially and avoid image processing on-device.", b.CPUScore),
			Importance: ImportanceMedium,
		}}, nil
	}
	return nil, nil
}

func evalStaleness(t Thresholds, in *input) ([]Recommendation, error) {
	b := in.bench
	if b == nil || !b.Valid() {
		return nil, nil
	}

	// Strictly greater than the renewal age triggers; a benchmark exactly
	// at the threshold is still considered current.
	if b.Age(in.now) > t.renewalAge() {
		return []Recommendation{{
			ID:         IDRerunBenchmark,
			Type:       TypeGeneral,
			Title:      "Benchmark results are stale",
			Description: fmt.Sprintf("The last benchmark ran %d days ago. Re-run it so recommendations reflect current device performance.", int(b.Age(in.now).Hours()/24)),
			Importance: ImportanceLow,
			Action:     ActionRunBenchmark,
		}}, nil
	}

	// A result recorded by an older release predates any scoring changes
	// shipped since, so it is due for renewal regardless of age.
	if in.build != nil && b.Release != "" {
		if rv, err := version.ParseVersion(b.Release); err == nil && rv.Compare(*in.build) < 0 {
			return []Recommendation{{
				ID:         IDRerunBenchmark,
				Type:       TypeGeneral,
				Title:      "Benchmark predates the current release",
				Description: fmt.Sprintf("The last benchmark was recorded by release %s; the current release is %s. Re-run it so scores reflect the current scoring revision.", rv.String(), in.build.String()),
				Importance: ImportanceLow,
				Action:     ActionRunBenchmark,
			}}, nil
		}
	}
	return nil, nil
}

// benchmarkSuggestion is the GENERAL entry emitted when no prior benchmark
// exists; it guarantees basic evaluations never return an empty list.
func benchmarkSuggestion() Recommendation {
	return Recommendation{
		ID:         IDBenchmarkSuggested,
		Type:       TypeGeneral,
		Title:      "Run a device benchmark",
		Description: "No benchmark results found. Run a full benchmark to unlock performance-specific recommendations.",
		Importance: ImportanceLow,
		Action:     ActionRunBenchmark,
	}
}

// fallback is appended once per evaluation when any rule was skipped for
// unreliable or failed capability reads.
func fallback() Recommendation {
	return Recommendation{
		ID:         IDGeneralFallback,
		Type:       TypeGeneral,
		Title:      "Some device readings were unavailable",
		Description: "One or more capability probes returned incomplete data. Recommendations may not cover all subsystems.",
		Importance: ImportanceLow,
	}
}

// allClear is the floor entry emitted when no rule triggered and no other
// floor applies, so evaluations never return an empty list.
func allClear() Recommendation {
	return Recommendation{
		ID:         IDAllClear,
		Type:       TypeGeneral,
		Title:      "Device is in good shape",
		Description: "All capability readings are within normal ranges. No adjustments needed for automation workloads.",
		Importance: ImportanceLow,
	}
}

func formatBytes(b int64) string {
	const (
		gib = 1 << 30
		mib = 1 << 20
	)
	switch {
	case b >= gib:
		return fmt.Sprintf("%.1f GB", float64(b)/gib)
	case b >= mib:
		return fmt.Sprintf("%.0f MB", float64(b)/mib)
	default:
		return fmt.Sprintf("%d bytes", b)
	}
}
