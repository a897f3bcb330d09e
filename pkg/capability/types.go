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

package capability

import "time"

// PerformanceClass is the coarse device tier derived from hardware
// characteristics or a combined benchmark score.
type PerformanceClass string

const (
	ClassLow     PerformanceClass = "LOW"
	ClassMid     PerformanceClass = "MID"
	ClassMidHigh PerformanceClass = "MID_HIGH"
	ClassHigh    PerformanceClass = "HIGH"
)

// PerformanceClasses is the list of all supported performance classes.
var PerformanceClasses = []PerformanceClass{
	ClassLow,
	ClassMid,
	ClassMidHigh,
	ClassHigh,
}

// String returns the string representation of the performance class.
func (c PerformanceClass) String() string {
	return string(c)
}

// IsValid reports whether the class is one of the supported tiers.
func (c PerformanceClass) IsValid() bool {
	switch c {
	case ClassLow, ClassMid, ClassMidHigh, ClassHigh:
		return true
	default:
		return false
	}
}

// ParsePerformanceClass parses a string into a PerformanceClass.
// Returns the class and true if parsing succeeds, or empty class and false otherwise.
func ParsePerformanceClass(s string) (PerformanceClass, bool) {
	for _, c := range PerformanceClasses {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Combined score boundaries between performance classes.
// Scores are unit-less, higher is better, and share the same scale
// across devices.
const (
	scoreMidFloor     = 2500
	scoreMidHighFloor = 6000
	scoreHighFloor    = 12000
)

// ClassifyScore derives a PerformanceClass from a combined benchmark score.
func ClassifyScore(combined uint64) PerformanceClass {
	switch {
	case combined >= scoreHighFloor:
		return ClassHigh
	case combined >= scoreMidHighFloor:
		return ClassMidHigh
	case combined >= scoreMidFloor:
		return ClassMid
	default:
		return ClassLow
	}
}

// CPUCapabilities describes the processor of the device.
type CPUCapabilities struct {
	// Cores is the number of logical cores.
	Cores int `json:"cores" yaml:"cores"`

	// PerformanceClass is the coarse tier of the processor.
	PerformanceClass PerformanceClass `json:"performanceClass" yaml:"performanceClass"`

	// Architecture is the machine architecture tag (e.g., arm64, amd64).
	Architecture string `json:"architecture" yaml:"architecture"`

	// SIMD reports whether vector extensions (NEON, AVX, SSE4) are available.
	SIMD bool `json:"simd" yaml:"simd"`
}

// Valid reports whether the reading carries usable data.
func (c *CPUCapabilities) Valid() bool {
	return c != nil && c.Cores > 0 && c.PerformanceClass.IsValid()
}

// MemoryCapabilities describes the RAM state of the device.
type MemoryCapabilities struct {
	// TotalBytes is the total installed RAM.
	TotalBytes int64 `json:"totalBytes" yaml:"totalBytes"`

	// AvailableBytes is the RAM currently available for allocation.
	AvailableBytes int64 `json:"availableBytes" yaml:"availableBytes"`

	// AvailablePercent is AvailableBytes as a percentage of TotalBytes.
	AvailablePercent float64 `json:"availablePercent" yaml:"availablePercent"`

	// LowMemory reports whether the device is under memory pressure.
	LowMemory bool `json:"lowMemory" yaml:"lowMemory"`
}

// Valid reports whether the reading carries usable data. Negative
// percentages and zero totals are sentinel values for failed reads.
func (m *MemoryCapabilities) Valid() bool {
	return m != nil &&
		m.TotalBytes > 0 &&
		m.AvailableBytes >= 0 &&
		m.AvailablePercent >= 0 &&
		m.AvailablePercent <= 100
}

// StorageCapabilities describes internal and external storage of the device.
type StorageCapabilities struct {
	// TotalBytes is the size of the internal storage volume.
	TotalBytes int64 `json:"totalBytes" yaml:"totalBytes"`

	// AvailableBytes is the free space on the internal storage volume.
	AvailableBytes int64 `json:"availableBytes" yaml:"availableBytes"`

	// ExternalAvailable reports whether removable storage is mounted.
	ExternalAvailable bool `json:"externalAvailable" yaml:"externalAvailable"`
}

// Valid reports whether the reading carries usable data.
func (s *StorageCapabilities) Valid() bool {
	return s != nil && s.TotalBytes > 0 && s.AvailableBytes >= 0
}

// AvailablePercent returns free space as a percentage of the volume size,
// or -1 when the reading is invalid.
func (s *StorageCapabilities) AvailablePercent() float64 {
	if !s.Valid() {
		return -1
	}
	return float64(s.AvailableBytes) / float64(s.TotalBytes) * 100
}

// BatteryStatus describes the battery state of the device.
type BatteryStatus struct {
	// LevelPercent is the charge level, 0-100.
	LevelPercent int `json:"levelPercent" yaml:"levelPercent"`

	// Charging reports whether the device is connected to power.
	Charging bool `json:"charging" yaml:"charging"`

	// SaverMode reports whether the OS battery saver is engaged.
	SaverMode bool `json:"saverMode" yaml:"saverMode"`

	// TemperatureC is the battery temperature in degrees Celsius.
	TemperatureC float64 `json:"temperatureC" yaml:"temperatureC"`
}

// Valid reports whether the reading carries usable data.
func (b *BatteryStatus) Valid() bool {
	return b != nil && b.LevelPercent >= 0 && b.LevelPercent <= 100
}

// BenchmarkResult holds the scores of a prior benchmark run.
type BenchmarkResult struct {
	// CPUScore is the processor subsystem score, higher is better.
	CPUScore uint64 `json:"cpuScore" yaml:"cpuScore"`

	// MemoryScore is the memory subsystem score, higher is better.
	MemoryScore uint64 `json:"memoryScore" yaml:"memoryScore"`

	// CombinedScore is the weighted aggregate of the subsystem scores.
	CombinedScore uint64 `json:"combinedScore" yaml:"combinedScore"`

	// PerformanceClass is the tier derived from CombinedScore.
	PerformanceClass PerformanceClass `json:"performanceClass" yaml:"performanceClass"`

	// Timestamp is the instant the benchmark was captured.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Release is the binary release that recorded the result. Empty for
	// results from dev builds or older store files.
	Release string `json:"release,omitempty" yaml:"release,omitempty"`
}

// Valid reports whether the result carries usable scores.
func (r *BenchmarkResult) Valid() bool {
	return r != nil && !r.Timestamp.IsZero()
}

// Age returns the time elapsed since the benchmark was captured.
func (r *BenchmarkResult) Age(now time.Time) time.Duration {
	return now.Sub(r.Timestamp)
}
