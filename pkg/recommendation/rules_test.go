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
	"testing"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

func TestEvalBattery_AbsentIsNotAnError(t *testing.T) {
	recs, err := evalBattery(DefaultThresholds(), &input{battery: nil})
	if err != nil {
		t.Fatalf("absent battery must not error, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("absent battery must not trigger, got %v", recs)
	}
}

func TestEvalBattery_SentinelIsUnreliable(t *testing.T) {
	in := &input{battery: &capability.BatteryStatus{LevelPercent: -5}}

	_, err := evalBattery(DefaultThresholds(), in)
	if !errors.Is(err, errUnreliable) {
		t.Errorf("sentinel battery data: err = %v, want errUnreliable", err)
	}
}

func TestEvalStorage_ZeroTotalIsUnreliable(t *testing.T) {
	in := &input{storage: &capability.StorageCapabilities{TotalBytes: 0, AvailableBytes: 0}}

	_, err := evalStorage(DefaultThresholds(), in)
	if !errors.Is(err, errUnreliable) {
		t.Errorf("zero-total storage: err = %v, want errUnreliable", err)
	}
}

func TestEvalCPUBottleneck_ZeroScoreDoesNotDivide(t *testing.T) {
	in := &input{bench: &capability.BenchmarkResult{CPUScore: 0, MemoryScore: 4000}}

	recs, err := evalCPUBottleneck(DefaultThresholds(), in)
	if err != nil {
		t.Fatalf("zero cpu score must not error, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("zero cpu score must not trigger bottleneck, got %v", recs)
	}
}

func TestEvalClassGuidance_HighTierClear(t *testing.T) {
	in := &input{bench: &capability.BenchmarkResult{PerformanceClass: capability.ClassHigh}}

	recs, err := evalClassGuidance(DefaultThresholds(), in)
	if err != nil || len(recs) != 0 {
		t.Errorf("high tier must produce no guidance, got recs=%v err=%v", recs, err)
	}
}

func TestEvalStaleness_RecordingRelease(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	build := version.MustParseVersion("1.2.0")

	tests := []struct {
		name      string
		release   string
		build     *version.Version
		wantRerun bool
	}{
		{name: "older release", release: "1.1.3", build: &build, wantRerun: true},
		{name: "same release", release: "1.2.0", build: &build, wantRerun: false},
		{name: "newer release", release: "1.3.0", build: &build, wantRerun: false},
		{name: "unparseable release", release: "dev", build: &build, wantRerun: false},
		{name: "no recorded release", release: "", build: &build, wantRerun: false},
		{name: "dev build", release: "1.1.3", build: nil, wantRerun: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &input{
				bench: &capability.BenchmarkResult{
					CPUScore:         8000,
					MemoryScore:      8000,
					CombinedScore:    8000,
					PerformanceClass: capability.ClassMidHigh,
					Timestamp:        now.Add(-24 * time.Hour),
					Release:          tt.release,
				},
				now:   now,
				build: tt.build,
			}

			recs, err := evalStaleness(DefaultThresholds(), in)
			if err != nil {
				t.Fatalf("evalStaleness() error = %v", err)
			}
			if got := len(recs) > 0; got != tt.wantRerun {
				t.Errorf("evalStaleness() rerun = %v, want %v (recs=%v)", got, tt.wantRerun, recs)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 512, want: "512 bytes"},
		{in: 256 << 20, want: "256 MB"},
		{in: 1 << 30, want: "1.0 GB"},
		{in: 5<<30 + 512<<20, want: "5.5 GB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
