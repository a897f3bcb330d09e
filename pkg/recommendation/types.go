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

// Type categorizes a recommendation by the subsystem it concerns.
type Type string

const (
	TypeGeneral     Type = "GENERAL"
	TypePerformance Type = "PERFORMANCE"
	TypeBattery     Type = "BATTERY"
	TypeMemory      Type = "MEMORY"
	TypeStorage     Type = "STORAGE"
)

// String returns the string representation of the recommendation type.
func (t Type) String() string {
	return string(t)
}

// Importance is the urgency tier of a recommendation.
type Importance string

const (
	ImportanceHigh   Importance = "HIGH"
	ImportanceMedium Importance = "MEDIUM"
	ImportanceLow    Importance = "LOW"
)

// String returns the string representation of the importance tier.
func (i Importance) String() string {
	return string(i)
}

// rank maps importance to a sortable weight, lower sorts first.
func (i Importance) rank() int {
	switch i {
	case ImportanceHigh:
		return 0
	case ImportanceMedium:
		return 1
	default:
		return 2
	}
}

// Stable rule identifiers. Callers use these for deduplication, so they
// must be deterministic for identical inputs.
const (
	IDBatteryCritical     = "battery_critical"
	IDBatteryLow          = "battery_low"
	IDTemperatureCritical = "temperature_critical"
	IDTemperatureElevated = "temperature_elevated"
	IDMemoryCritical      = "memory_critical"
	IDMemoryLow           = "memory_low"
	IDMemoryModerate      = "memory_moderate"
	IDStorageCritical     = "storage_critical"
	IDStorageLow          = "storage_low"
	IDCPUBottleneck       = "cpu_bottleneck"
	IDMemoryBottleneck    = "memory_bottleneck"
	IDMidPerf1            = "mid_perf_1"
	IDMidPerf2            = "mid_perf_2"
	IDLowPerf1            = "low_perf_1"
	IDCPULow1             = "cpu_low_1"
	IDCPUMid1             = "cpu_mid_1"
	IDRerunBenchmark      = "rerun_benchmark"
	IDBenchmarkSuggested  = "benchmark_suggested"
	IDGeneralFallback     = "general_fallback"
	IDAllClear            = "all_clear"
)

// Follow-up action references, opaque to the engine. The bridging adapter
// maps these to host settings screens.
const (
	ActionBatterySettings = "settings://battery"
	ActionStorageSettings = "settings://storage"
	ActionRunBenchmark    = "action://benchmark/run"
)

// Recommendation is a single actionable or informational suggestion
// derived from device state. Instances are created fresh on each engine
// invocation and carry no identity beyond the returned list.
type Recommendation struct {
	// ID is the stable key of the rule that produced the recommendation.
	ID string `json:"id" yaml:"id"`

	// Type is the subsystem category.
	Type Type `json:"type" yaml:"type"`

	// Title is a short human-readable summary.
	Title string `json:"title" yaml:"title"`

	// Description is the full human-readable guidance.
	Description string `json:"description" yaml:"description"`

	// Importance is the urgency tier.
	Importance Importance `json:"importance" yaml:"importance"`

	// Action is an optional opaque follow-up reference. Empty when no
	// actionable follow-up exists.
	Action string `json:"action,omitempty" yaml:"action,omitempty"`
}
